package core

import (
	"fmt"
)

// UnknownSampleError reports a requested sample that is not a column of the
// table. Group is set when the sample was requested as a replicate group
// member.
type UnknownSampleError struct {
	Sample string
	Group  string
}

func (e *UnknownSampleError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("sample %q of group %q is not in the OTU table", e.Sample, e.Group)
	}
	return fmt.Sprintf("sample %q is not in the OTU table", e.Sample)
}

// DuplicateSampleError reports a sample requested twice in one selection or
// one replicate group.
type DuplicateSampleError struct {
	Sample string
	Group  string
}

func (e *DuplicateSampleError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("sample %q is listed twice in group %q", e.Sample, e.Group)
	}
	return fmt.Sprintf("sample %q is listed twice in the selection", e.Sample)
}

// EmptySelectionError is returned when a selection resolves to no columns.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "the sample selection resolves to no columns"
}

type InvalidFractionError struct {
	Fraction float64
}

func (e *InvalidFractionError) Error() string {
	return fmt.Sprintf("abundance fraction %v is outside [0,1]", e.Fraction)
}

// InvalidGroupError is returned when a replicate computation is requested
// without usable groups.
type InvalidGroupError struct {
	Group  string
	Reason string
}

func (e *InvalidGroupError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("replicate group %q: %s", e.Group, e.Reason)
	}
	return "replicate groups: " + e.Reason
}

type InvalidRequiredCountError struct {
	RequiredCount int64
}

func (e *InvalidRequiredCountError) Error() string {
	return fmt.Sprintf("replicate count %d must not be negative", e.RequiredCount)
}

type InvalidScopeError struct {
	Value string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("threshold scope %q is not one of %q, %q", e.Value, ScopeSelection, ScopeComplete)
}

type InvalidToleranceError struct {
	Value string
}

func (e *InvalidToleranceError) Error() string {
	return fmt.Sprintf("replicate tolerance %q is not one of %q, %q", e.Value, ToleranceMinimum, ToleranceExcludeOutliers)
}
