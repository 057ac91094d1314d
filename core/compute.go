package core

import (
	"github.com/timkahlke/panbiom/otutable"
)

// Request describes one core computation. Samples and Groups are mutually
// exclusive; with neither, every sample of the table is used.
type Request struct {
	Samples []string
	Groups  []ReplicateGroup
	Options Options
}

// Replicated reports whether the request is a replicate-aware one.
func (r Request) Replicated() bool { return len(r.Groups) > 0 }

// Compute validates req against t and returns its core. Every input error is
// reported before any set is built.
func Compute(t *otutable.Table, req Request) (Result, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	if opts.RequiredCount.Valid && !req.Replicated() {
		return Result{}, &InvalidGroupError{Reason: "a replicate count was given without replicate groups"}
	}

	columns, err := Selection(t, req)
	if err != nil {
		return Result{}, err
	}

	threshold, err := Threshold(t, columns, opts.Scope, opts.FractionOrZero())
	if err != nil {
		return Result{}, err
	}

	if req.Replicated() {
		groups, err := ResolveGroups(t, req.Groups)
		if err != nil {
			return Result{}, err
		}
		return ExtractReplicateCore(t, groups, threshold, opts.RequiredCount, opts.Tolerance)
	}

	return ExtractCore(t, columns, threshold), nil
}

// Selection returns the columns a request covers: every group member for a
// replicate request, otherwise its samples (or the whole table).
func Selection(t *otutable.Table, req Request) ([]int, error) {
	var columns []int
	if req.Replicated() {
		if len(req.Samples) > 0 {
			return nil, &InvalidGroupError{Reason: "a sample selection and replicate groups cannot be combined"}
		}

		groups, err := ResolveGroups(t, req.Groups)
		if err != nil {
			return nil, err
		}
		columns = groupColumns(groups)
	} else {
		var err error
		if columns, err = ResolveColumns(t, req.Samples); err != nil {
			return nil, err
		}
	}

	if len(columns) == 0 {
		return nil, &EmptySelectionError{}
	}
	return columns, nil
}

// ComputePartition returns the core/accessory/unique split of the request's
// selection, using the same threshold Compute would.
func ComputePartition(t *otutable.Table, req Request) (PartitionResult, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return PartitionResult{}, err
	}

	columns, err := Selection(t, req)
	if err != nil {
		return PartitionResult{}, err
	}

	threshold, err := Threshold(t, columns, opts.Scope, opts.FractionOrZero())
	if err != nil {
		return PartitionResult{}, err
	}

	return Partition(t, columns, threshold), nil
}
