package genome

// AdjustFitness divides the genome's fitness by speciesSize, the
// fitness-sharing step applied once per generation by the owning species.
func (g *Genome) AdjustFitness(speciesSize int) {
	if speciesSize <= 0 {
		return
	}
	g.Fitness /= float64(speciesSize)
}
