// Package species implements the speciation and intra-species reproduction
// bookkeeping: a bag of genomes grouped by compatibility distance to a
// shared representative, with stagnation tracking and elitist,
// crossover-and-mutation reproduction.
package species

import (
	"math"
	"sort"

	"github.com/evoforge/neatcore"
	"github.com/evoforge/neatcore/activation"
	"github.com/evoforge/neatcore/genome"
	"github.com/evoforge/neatcore/innovation"
)

// Species is a bag of genomes sharing a representative, tracking
// fitness-stagnation across generations.
type Species struct {
	Representative *genome.Genome
	Members        []*genome.Genome

	MaxFitnessSeen              float64
	GenerationsSinceImprovement int
}

// New returns a fresh species seeded with representative as both its first
// member and its representative genome.
func New(representative *genome.Genome) *Species {
	return &Species{
		Representative: representative,
		Members:        []*genome.Genome{representative},
	}
}

// TryAdd computes the compatibility distance between g and the species'
// representative; if it is within threshold, g is appended to Members and
// TryAdd returns true.
func (s *Species) TryAdd(g *genome.Genome, threshold float64, params genome.CompatDistParams) bool {
	if s.Representative == nil {
		s.Representative = g
		s.Members = append(s.Members, g)
		return true
	}
	dist := g.CompatibilityDistance(s.Representative, params)
	if dist > threshold {
		return false
	}
	s.Members = append(s.Members, g)
	return true
}

// CalcAdjustedFitness divides every member's fitness by the member count,
// the fitness-sharing mechanism that keeps large species from dominating
// reproduction purely by headcount.
func (s *Species) CalcAdjustedFitness() {
	n := len(s.Members)
	for _, m := range s.Members {
		m.AdjustFitness(n)
	}
}

// TotalAdjustedFitness sums the (already-adjusted) fitness of every member.
func (s *Species) TotalAdjustedFitness() float64 {
	var total float64
	for _, m := range s.Members {
		total += m.Fitness
	}
	return total
}

// CheckStagnation computes the current max fitness across members (as
// stored; Generation.Reproduce calls it after CalcAdjustedFitness); if
// it does not exceed MaxFitnessSeen, the stagnation counter is incremented,
// otherwise MaxFitnessSeen is updated and the counter resets to zero.
// CheckStagnation returns false once the counter reaches genThreshold,
// signaling the caller to starve this species during reproduction.
func (s *Species) CheckStagnation(genThreshold int) bool {
	var maxFit float64
	for i, m := range s.Members {
		if i == 0 || m.Fitness > maxFit {
			maxFit = m.Fitness
		}
	}
	if maxFit > s.MaxFitnessSeen {
		s.MaxFitnessSeen = maxFit
		s.GenerationsSinceImprovement = 0
	} else {
		s.GenerationsSinceImprovement++
	}
	return s.GenerationsSinceImprovement < genThreshold
}

// Clear samples a random member as the species' next representative, then
// drops every member, leaving the species ready to accumulate next
// generation's organisms during speciation.
func (s *Species) Clear(rng neatcore.Rand) {
	if len(s.Members) > 0 {
		s.Representative = s.Members[rng.Intn(len(s.Members))]
	}
	s.Members = nil
}

func sortMembersByFitnessDescending(members []*genome.Genome) []*genome.Genome {
	sorted := make([]*genome.Genome, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })
	return sorted
}

// MutateParams bundles the percentage knobs every structural/weight
// mutation operator takes, so Reproduce's clonal-reproduction step can
// apply all of them with a single parameter.
type MutateParams struct {
	MutateWeightPct    int
	RngResetPct        int
	AddNodePct         int
	HiddenActivation   activation.Type
	AddConnectionPct   int
	AddConnectionTries int
}

// Reproduce produces exactly nOffspring child genomes from the species'
// current members. Members are sorted by fitness descending; with more than
// five members the top one is copied unchanged as an elite. The worst are
// killed, keeping max(1, round((1-killPercent)*count)). Of the remaining
// slots, floor(remaining*mutPercent) are filled by mutated clones and the
// rest by crossover between survivors (self-crossover for a single
// survivor); every non-elite child has its fitness reset to zero.
func (s *Species) Reproduce(reg *innovation.Registry, nOffspring int, killPercent float64, mutPercent float64, mutParams MutateParams, rng neatcore.Rand) []*genome.Genome {
	if nOffspring == 0 || len(s.Members) == 0 {
		return nil
	}

	sorted := sortMembersByFitnessDescending(s.Members)
	offspring := make([]*genome.Genome, 0, nOffspring)

	if len(sorted) > 5 {
		elite := sorted[0].Clone()
		offspring = append(offspring, elite)
	}

	keep := int(math.Round((1 - killPercent) * float64(len(sorted))))
	if keep < 1 {
		keep = 1
	}
	if keep > len(sorted) {
		keep = len(sorted)
	}
	survivors := sorted[:keep]

	remaining := nOffspring - len(offspring)
	byMutation := int(math.Floor(float64(remaining) * mutPercent))
	byCrossover := remaining - byMutation

	offspring = append(offspring, reproduceByCrossover(survivors, byCrossover, reg, rng)...)
	offspring = append(offspring, reproduceByMutation(survivors, byMutation, reg, mutParams, rng)...)

	return offspring
}

func reproduceByCrossover(survivors []*genome.Genome, n int, reg *innovation.Registry, rng neatcore.Rand) []*genome.Genome {
	children := make([]*genome.Genome, 0, n)
	if n <= 0 {
		return children
	}
	if len(survivors) == 1 {
		for k := 0; k < n; k++ {
			child := genome.Crossover(survivors[0], survivors[0], reg, rng)
			child.Fitness = 0
			children = append(children, child)
		}
		return children
	}

	i, j := 0, 1
	for k := 0; k < n; k++ {
		child := genome.Crossover(survivors[i], survivors[j], reg, rng)
		child.Fitness = 0
		children = append(children, child)

		j++
		if j >= len(survivors) {
			j = 0
		}
		i++
		if i >= len(survivors) {
			i = 0
		}
		if i == j {
			j = (j + 1) % len(survivors)
		}
	}
	return children
}

func reproduceByMutation(survivors []*genome.Genome, n int, reg *innovation.Registry, mutParams MutateParams, rng neatcore.Rand) []*genome.Genome {
	children := make([]*genome.Genome, 0, n)
	if n <= 0 {
		return children
	}
	for k := 0; k < n; k++ {
		parent := survivors[k%len(survivors)]
		child := parent.Clone()
		child.Fitness = 0
		_ = child.MutateWeight(mutParams.MutateWeightPct, mutParams.RngResetPct, rng)
		_ = child.AddNode(reg, mutParams.AddNodePct, mutParams.HiddenActivation, rng)
		_ = child.AddConnection(reg, mutParams.AddConnectionPct, rng, mutParams.AddConnectionTries)
		children = append(children, child)
	}
	return children
}
