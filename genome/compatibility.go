package genome

import (
	"math"

	"github.com/evoforge/neatcore/network"
)

// CompatDistParams holds the coefficients used by CompatibilityDistance.
type CompatDistParams struct {
	C1                 float64
	C2                 float64
	C3                 float64
	NormalizeThreshold int
}

// CompatibilityDistance computes the structural + weight distance between g
// and other: c1*E/N + c2*D/N + c3*meanWeightDiff, where E is the excess gene
// count, D the disjoint gene count, and N the larger genome's connection
// count (or 1, if both genomes are smaller than params.NormalizeThreshold).
func (g *Genome) CompatibilityDistance(other *Genome, params CompatDistParams) float64 {
	a := sortedByInnovation(g.Connections)
	b := sortedByInnovation(other.Connections)

	var maxInnovA, maxInnovB int64
	if len(a) > 0 {
		maxInnovA = a[len(a)-1].Innovation
	}
	if len(b) > 0 {
		maxInnovB = b[len(b)-1].Innovation
	}

	byInnovA := indexByInnovation(a)
	byInnovB := indexByInnovation(b)

	var excess, disjoint int
	var matched int
	var weightDiffSum float64

	smallerMax := maxInnovA
	if maxInnovB < smallerMax {
		smallerMax = maxInnovB
	}

	for innov, ca := range byInnovA {
		if cb, ok := byInnovB[innov]; ok {
			matched++
			weightDiffSum += math.Abs(ca.Weight - cb.Weight)
			continue
		}
		if innov > smallerMax {
			excess++
		} else {
			disjoint++
		}
	}
	for innov := range byInnovB {
		if _, ok := byInnovA[innov]; ok {
			continue
		}
		if innov > smallerMax {
			excess++
		} else {
			disjoint++
		}
	}

	meanWeightDiff := 0.0
	if matched > 0 {
		meanWeightDiff = weightDiffSum / float64(matched)
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < params.NormalizeThreshold {
		n = 1
	}

	return params.C1*float64(excess)/float64(n) +
		params.C2*float64(disjoint)/float64(n) +
		params.C3*meanWeightDiff
}

func indexByInnovation(conns []network.Connection) map[int64]network.Connection {
	m := make(map[int64]network.Connection, len(conns))
	for _, c := range conns {
		m[c.Innovation] = c
	}
	return m
}
