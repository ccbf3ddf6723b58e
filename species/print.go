package species

import (
	"fmt"
	"io"
)

// PrintSpeciesInfo writes a short summary of the species' current state:
// member count, stagnation counter, and best fitness seen.
func (s *Species) PrintSpeciesInfo(w io.Writer) {
	fmt.Fprintf(w, "Species: members=%d max_fitness_seen=%g generations_since_improvement=%d\n",
		len(s.Members), s.MaxFitnessSeen, s.GenerationsSinceImprovement)
}
