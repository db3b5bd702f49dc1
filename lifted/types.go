// Package lifted defines sentinel errors for the lifted subpackage of
// github.com/katalvlaran/liftgrid.
package lifted

import "errors"

// Sentinel errors for lifted operations. Call sites wrap these with
// the concrete mismatched dimensions; match with errors.Is.
var (
	// ErrNilObjective indicates a nil *Objective collaborator.
	ErrNilObjective = errors.New("lifted: objective must be non-nil")
	// ErrNilFactory indicates a nil solver factory collaborator.
	ErrNilFactory = errors.New("lifted: solver factory must be non-nil")
	// ErrWeightsShape indicates a weight tensor whose element count is
	// not grid size × offset count.
	ErrWeightsShape = errors.New("lifted: weights length must equal grid size × offset count")
	// ErrLabelingShape indicates a labeling whose length is not the
	// grid size.
	ErrLabelingShape = errors.New("lifted: labeling length must equal grid size")
	// ErrNoProposals indicates a multi-proposal fuse with zero
	// proposals; the best-of-inputs baseline would be undefined.
	ErrNoProposals = errors.New("lifted: fuse requires at least one proposal")
	// ErrProposalShape indicates a proposal whose length is not the
	// grid size.
	ErrProposalShape = errors.New("lifted: proposal length must equal grid size")
)
