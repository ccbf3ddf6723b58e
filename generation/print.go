package generation

import (
	"fmt"
	"io"

	"github.com/evoforge/neatcore/stats"
)

// PrintInfo writes a short summary of the generation's current state:
// generation number, population size, fitness distribution figures, and
// species count.
func (g *Generation) PrintInfo(w io.Writer) {
	s := stats.ComputeFitnessStats(g.fitnessValues())

	fmt.Fprintln(w, "_____________________")
	fmt.Fprintf(w, "Generation:\t%d\n", g.GenerationNumber)
	fmt.Fprintf(w, "Population:\t%d\n", len(g.Population))
	fmt.Fprintf(w, "Ave Fitness:\t%g\n", s.Mean)
	fmt.Fprintf(w, "Med Fitness:\t%g\n", s.Median)
	fmt.Fprintf(w, "Max Fitness:\t%g\n", s.Best)
	fmt.Fprintf(w, "Min Fitness:\t%g\n", s.Worst)
	fmt.Fprintf(w, "Fit Variance:\t%g\n", s.Variance)
	fmt.Fprintf(w, "Num Species:\t%d\n", len(g.Species))
}
