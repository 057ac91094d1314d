package core

import (
	"github.com/timkahlke/panbiom/otutable"
)

// Class places a feature by how many selected samples it passes in.
type Class string

const (
	ClassCore      Class = "core"
	ClassAccessory Class = "accessory"
	ClassUnique    Class = "unique"
	ClassAbsent    Class = "absent"
)

// PartitionResult splits every feature of a table into core, accessory,
// unique and absent for one selection and threshold.
type PartitionResult struct {
	Threshold float64
	Columns   []int

	// Prevalence holds, per table row, the number of columns passed.
	Prevalence []int

	Core      []int
	Accessory []int
	Unique    []int
	Absent    []int
}

// Classify returns the class of table row i.
func (p PartitionResult) Classify(i int) Class {
	n := p.Prevalence[i]
	switch {
	case n == 0:
		return ClassAbsent
	case n == len(p.Columns):
		return ClassCore
	case n == 1:
		return ClassUnique
	}
	return ClassAccessory
}

// Partition counts, for every feature, the columns in which it passes the
// threshold. Its Core always equals ExtractCore for the same arguments.
func Partition(t *otutable.Table, columns []int, threshold float64) PartitionResult {
	p := PartitionResult{
		Threshold:  threshold,
		Columns:    append([]int(nil), columns...),
		Prevalence: make([]int, t.NumFeatures()),
		Core:       []int{},
		Accessory:  []int{},
		Unique:     []int{},
		Absent:     []int{},
	}

	buf := make([]float64, t.NumFeatures())
	for _, j := range columns {
		for i, v := range t.Column(buf, j) {
			if passes(v, threshold) {
				p.Prevalence[i]++
			}
		}
	}

	for i := range p.Prevalence {
		switch p.Classify(i) {
		case ClassCore:
			p.Core = append(p.Core, i)
		case ClassUnique:
			p.Unique = append(p.Unique, i)
		case ClassAccessory:
			p.Accessory = append(p.Accessory, i)
		default:
			p.Absent = append(p.Absent, i)
		}
	}

	return p
}
