package lifted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/lifted"
)

// TestExtractBoundaries_Concrete2x2 pins the boundary tensor of the
// row-split ground truth under offsets (0,1) and (1,0).
func TestExtractBoundaries_Concrete2x2(t *testing.T) {
	shape := mustShape(t, 2, 2)
	offs := mustOffsets(t, [][]int{{0, 1}, {1, 0}})
	gt := []uint64{0, 0, 1, 1}

	out, err := lifted.ExtractBoundaries(shape, offs, gt)
	require.NoError(t, err)

	want := []bool{
		false, true, // (0,0): right partner same row, down partner crosses
		false, true, // (0,1): right partner out of bounds, down crosses
		false, false, // (1,0): right partner same row, down out of bounds
		false, false, // (1,1): both partners out of bounds
	}
	assert.Equal(t, want, out)
}

// TestExtractBoundaries_OutOfRangeStaysFalse: an offset that always
// leaves the grid yields an all-false column.
func TestExtractBoundaries_OutOfRangeStaysFalse(t *testing.T) {
	shape := mustShape(t, 1, 3)
	offs := mustOffsets(t, [][]int{{1, 0}})
	gt := []uint64{0, 1, 2}

	out, err := lifted.ExtractBoundaries(shape, offs, gt)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, out)
}

// TestExtractBoundaries_InputUntouched verifies pure-function behavior.
func TestExtractBoundaries_InputUntouched(t *testing.T) {
	shape := mustShape(t, 2, 2)
	offs := mustOffsets(t, [][]int{{0, 1}})
	gt := []uint64{3, 1, 4, 1}
	snapshot := append([]uint64(nil), gt...)

	_, err := lifted.ExtractBoundaries(shape, offs, gt)
	require.NoError(t, err)
	assert.Equal(t, snapshot, gt)
}

// TestExtractBoundaries_Validation covers both fail-fast paths.
func TestExtractBoundaries_Validation(t *testing.T) {
	shape := mustShape(t, 2, 2)

	_, err := lifted.ExtractBoundaries(shape, mustOffsets(t, [][]int{{0, 1}}), []uint64{0, 1})
	assert.ErrorIs(t, err, lifted.ErrLabelingShape)

	_, err = lifted.ExtractBoundaries(shape, mustOffsets(t, [][]int{{0, 1, 2}}), []uint64{0, 1, 2, 3})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
}

// TestConnectedComponents_SplitsDisconnectedLabels: equal labels in
// separate spatial regions receive distinct component ids.
func TestConnectedComponents_SplitsDisconnectedLabels(t *testing.T) {
	shape := mustShape(t, 1, 3)
	labels := []uint64{4, 8, 4} // the two 4s do not touch

	out, k, err := lifted.ConnectedComponents(shape, labels)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, []uint64{0, 1, 2}, out)
}

// TestConnectedComponents_MergesAcrossAxes: one label region spanning
// both axes collapses to a single dense id.
func TestConnectedComponents_MergesAcrossAxes(t *testing.T) {
	shape := mustShape(t, 2, 2)
	labels := []uint64{0, 0, 1, 0}

	out, k, err := lifted.ConnectedComponents(shape, labels)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []uint64{0, 0, 1, 0}, out, "the L-shaped 0-region stays one component")
}

// TestConnectedComponents_IdsIrrelevant: partitions with the same
// pair structure normalize to the same dense output.
func TestConnectedComponents_IdsIrrelevant(t *testing.T) {
	shape := mustShape(t, 2, 2)

	a, _, err := lifted.ConnectedComponents(shape, []uint64{0, 0, 1, 1})
	require.NoError(t, err)
	b, _, err := lifted.ConnectedComponents(shape, []uint64{9, 9, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestConnectedComponents_Validation covers the length check.
func TestConnectedComponents_Validation(t *testing.T) {
	shape := mustShape(t, 2, 2)
	_, _, err := lifted.ConnectedComponents(shape, []uint64{0})
	assert.ErrorIs(t, err, lifted.ErrLabelingShape)
}
