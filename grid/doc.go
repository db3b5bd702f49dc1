// Package grid provides dimension-generic primitives for regular
// pixel/voxel grids: shapes, row-major index arithmetic, offset sets
// and lazy coordinate traversal.
//
// What:
//
//   - Shape wraps D positive extents and maps coordinates to row-major
//     linear indices and back.
//   - Offsets holds an ordered list of integer displacement vectors,
//     the “lifted” neighbor directions of a pixel.
//   - Iterator walks all coordinates of a shape in row-major order
//     without materializing them, so a single code path replaces
//     hand-unrolled nested loops per dimension.
//   - AxisSteps yields the D unit displacements used for direct
//     (non-lifted) neighbor walks.
//
// Why:
//
//   - Segmentation energies: one traversal serves 2-D images and 3-D
//     volumes alike.
//   - Tensor addressing: flat storage of shape × n_offsets weight
//     tensors via Index and Strides.
//
// Complexity:
//
//   - Index / CoordinateInto / InBounds: O(D).
//   - Iterator.Next: amortized O(1), worst-case O(D) per step.
//
// Errors:
//
//   - ErrEmptyShape: a shape needs at least one extent.
//   - ErrNonPositiveExtent: every extent must be ≥ 1.
//   - ErrNonRectangular: offset vectors must share one dimensionality.
//   - ErrDimensionMismatch: coordinate or offset dimensionality differs
//     from the shape's.
package grid
