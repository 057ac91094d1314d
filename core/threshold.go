package core

import (
	"github.com/timkahlke/panbiom/otutable"
)

// Threshold returns fraction times the total count of either the selected
// columns (ScopeSelection) or the whole table (ScopeComplete). No rounding is
// applied.
func Threshold(t *otutable.Table, columns []int, scope Scope, fraction float64) (float64, error) {
	if err := validateFraction(fraction); err != nil {
		return 0, err
	}
	var total float64
	switch scope {
	case ScopeSelection:
		for _, j := range columns {
			total += t.ColumnSum(j)
		}
	case ScopeComplete:
		total = t.Total()
	default:
		return 0, &InvalidScopeError{Value: string(scope)}
	}

	return total * fraction, nil
}
