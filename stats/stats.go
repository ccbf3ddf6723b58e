// Package stats provides descriptive statistics over per-generation
// fitness history and a diagnostic .npz export for offline analysis.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fitnesses provides descriptive statistics on a slice of per-organism
// fitness values.
type Fitnesses []float64

// Min returns the smallest value, or NaN for an empty slice.
func (x Fitnesses) Min() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the largest value, or NaN for an empty slice.
func (x Fitnesses) Max() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// Sum returns the total of the values.
func (x Fitnesses) Sum() float64 {
	return floats.Sum(x)
}

// Mean returns the average of the values, or NaN for an empty slice.
func (x Fitnesses) Mean() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// MeanVariance returns the sample mean and unbiased variance.
func (x Fitnesses) MeanVariance() (mean, variance float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.MeanVariance(x, nil)
}

// Median returns the 50% quantile.
func (x Fitnesses) Median() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Quantile(0.5, stat.Empirical, sortedCopy(x), nil)
}

// GenerationStats summarizes one generation's population fitness
// distribution, computed from Fitnesses by ComputeFitnessStats.
type GenerationStats struct {
	Mean     float64
	Variance float64
	Best     float64
	Worst    float64
	Median   float64
}

// ComputeFitnessStats computes a GenerationStats summary over a
// generation's population fitness values.
func ComputeFitnessStats(fitness Fitnesses) GenerationStats {
	mean, variance := fitness.MeanVariance()
	return GenerationStats{
		Mean:     mean,
		Variance: variance,
		Best:     fitness.Max(),
		Worst:    fitness.Min(),
		Median:   fitness.Median(),
	}
}

func sortedCopy(x Fitnesses) Fitnesses {
	out := make(Fitnesses, len(x))
	copy(out, x)
	sort.Float64s(out)
	return out
}
