// Package multicut defines the solver contract and sentinel errors for
// the multicut subpackage of github.com/katalvlaran/liftgrid.
package multicut

import (
	"errors"
	"log"
)

// Sentinel errors for multicut operations.
var (
	// ErrNilGraph indicates a nil graph handed to a Factory or Solver.
	ErrNilGraph = errors.New("multicut: graph must be non-nil")
	// ErrNodeRange indicates an edge endpoint outside [0, numNodes).
	ErrNodeRange = errors.New("multicut: node id out of range")
	// ErrLabelingLength indicates a node labeling whose length differs
	// from the graph's node count.
	ErrLabelingLength = errors.New("multicut: labeling length must equal the node count")
)

// Observer receives solver progress. Visit is called after each solver
// step with a monotonically increasing step counter and the current
// objective value; returning false requests an early stop. Solvers
// must treat a nil Observer as a no-op.
type Observer interface {
	Visit(step int, energy float64) bool
}

// Solver optimizes one multicut problem instance. Optimize runs to
// completion (or until the Observer requests a stop) and mutates
// labels in place; labels both seeds and receives the node labeling.
// A Solver is bound to the Graph it was created for and is used by
// exactly one optimization call.
type Solver interface {
	Optimize(labels []uint64, obs Observer) error
}

// Factory builds independent Solver instances, one per problem.
// Implementations must be stateless or internally synchronized so a
// single Factory can serve concurrent callers.
type Factory interface {
	Create(g *Graph) (Solver, error)
}

// LogObserver is an Observer that reports progress through a
// *log.Logger and never requests an early stop.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns a LogObserver writing to logger, or to the
// standard logger when logger is nil.
func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}

	return &LogObserver{logger: logger}
}

// Visit logs one progress line and continues the solve.
func (o *LogObserver) Visit(step int, energy float64) bool {
	o.logger.Printf("multicut: step=%d energy=%g", step, energy)

	return true
}
