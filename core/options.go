package core

import (
	"math"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Scope selects which columns' totals an abundance threshold is relative to.
type Scope string

const (
	// ScopeSelection makes the threshold relative to the selected samples.
	ScopeSelection Scope = "selection"
	// ScopeComplete makes the threshold relative to every sample in the
	// table.
	ScopeComplete Scope = "complete"
)

func ParseScope(s string) (Scope, error) {
	switch sc := Scope(strings.ToLower(strings.TrimSpace(s))); sc {
	case ScopeSelection, ScopeComplete:
		return sc, nil
	}
	return "", &InvalidScopeError{Value: s}
}

// Tolerance decides how a replicate count is read.
type Tolerance string

const (
	// ToleranceMinimum: a feature must pass in at least RequiredCount
	// replicates of a group.
	ToleranceMinimum Tolerance = "minimum"
	// ToleranceExcludeOutliers: at most RequiredCount replicates of a group
	// may fail.
	ToleranceExcludeOutliers Tolerance = "exclude-outliers"
)

func ParseTolerance(s string) (Tolerance, error) {
	switch tol := Tolerance(strings.ToLower(strings.TrimSpace(s))); tol {
	case ToleranceMinimum, ToleranceExcludeOutliers:
		return tol, nil
	}
	return "", &InvalidToleranceError{Value: s}
}

// Options configures one core computation.
type Options struct {
	Scope Scope

	// Fraction of the scope's total count that a count must reach. Unset
	// means 0, i.e. any nonzero count passes.
	Fraction null.Float

	// RequiredCount is the replicate count read according to Tolerance.
	// Unset means every replicate of a group must pass.
	RequiredCount null.Int

	Tolerance Tolerance

	// PrintTaxonomy asks writers to append taxonomy labels to each feature.
	PrintTaxonomy bool
}

func DefaultOptions() Options {
	return Options{
		Scope:         ScopeSelection,
		Tolerance:     ToleranceMinimum,
		PrintTaxonomy: true,
	}
}

// FractionOrZero returns the configured fraction, or 0 when unset.
func (o Options) FractionOrZero() float64 {
	return o.Fraction.ValueOrZero()
}

// Validate checks every option without touching any table.
func (o Options) Validate() error {
	if _, err := ParseScope(string(o.Scope)); err != nil {
		return err
	}
	if _, err := ParseTolerance(string(o.Tolerance)); err != nil {
		return err
	}
	if err := validateFraction(o.FractionOrZero()); err != nil {
		return err
	}
	if o.RequiredCount.Valid && o.RequiredCount.Int64 < 0 {
		return &InvalidRequiredCountError{RequiredCount: o.RequiredCount.Int64}
	}

	return nil
}

func validateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return &InvalidFractionError{Fraction: fraction}
	}
	return nil
}
