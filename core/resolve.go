package core

import (
	"github.com/timkahlke/panbiom/otutable"
)

// ReplicateGroup is a named set of samples that replicate one treatment.
type ReplicateGroup struct {
	Name    string
	Samples []string
}

// ResolvedGroup is a ReplicateGroup whose samples have been mapped to table
// columns.
type ResolvedGroup struct {
	Name    string
	Columns []int
}

// ResolveColumns maps sample names to table columns, keeping their order. An
// empty list selects every column in table order. If any name is unknown or
// repeated, nothing is returned.
func ResolveColumns(t *otutable.Table, samples []string) ([]int, error) {
	if len(samples) == 0 {
		columns := make([]int, t.NumSamples())
		for j := range columns {
			columns[j] = j
		}
		return columns, nil
	}

	return resolve(t, samples, "")
}

// ResolveGroups maps every group's samples to table columns. A group without
// samples resolves to no columns.
func ResolveGroups(t *otutable.Table, groups []ReplicateGroup) ([]ResolvedGroup, error) {
	out := make([]ResolvedGroup, 0, len(groups))
	for _, g := range groups {
		columns, err := resolve(t, g.Samples, g.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedGroup{Name: g.Name, Columns: columns})
	}

	return out, nil
}

func resolve(t *otutable.Table, samples []string, group string) ([]int, error) {
	columns := make([]int, 0, len(samples))
	seen := make(map[int]struct{}, len(samples))
	for _, s := range samples {
		j, ok := t.SampleIndex(s)
		if !ok {
			return nil, &UnknownSampleError{Sample: s, Group: group}
		}
		if _, dup := seen[j]; dup {
			return nil, &DuplicateSampleError{Sample: s, Group: group}
		}
		seen[j] = struct{}{}
		columns = append(columns, j)
	}

	return columns, nil
}

// groupColumns returns the distinct columns of all groups, in first-seen
// order.
func groupColumns(groups []ResolvedGroup) []int {
	seen := make(map[int]struct{})
	var columns []int
	for _, g := range groups {
		for _, j := range g.Columns {
			if _, exists := seen[j]; exists {
				continue
			}
			seen[j] = struct{}{}
			columns = append(columns, j)
		}
	}

	return columns
}
