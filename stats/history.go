package stats

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npz"
)

// History accumulates one GenerationStats per generation, so a run's
// fitness trajectory can be inspected or exported once evolution finishes.
type History struct {
	records []GenerationStats
}

// Record appends one generation's summary to the history.
func (h *History) Record(s GenerationStats) {
	h.records = append(h.records, s)
}

// Len returns the number of generations recorded.
func (h *History) Len() int {
	return len(h.records)
}

// BestFitnesses returns the best-fitness series across every recorded
// generation, in generation order.
func (h *History) BestFitnesses() []float64 {
	out := make([]float64, len(h.records))
	for i, r := range h.records {
		out[i] = r.Best
	}
	return out
}

// MeanFitnesses returns the mean-fitness series across every recorded
// generation, in generation order.
func (h *History) MeanFitnesses() []float64 {
	out := make([]float64, len(h.records))
	for i, r := range h.records {
		out[i] = r.Mean
	}
	return out
}

// DumpNPZ writes the accumulated fitness history to w in NumPy's .npz
// archive format: a "mean_fitness" and "best_fitness" array, each of
// length Len(), plus a "mean_variance" array.
func (h *History) DumpNPZ(w io.Writer) error {
	variance := make([]float64, len(h.records))
	for i, r := range h.records {
		variance[i] = r.Variance
	}

	out := npz.NewWriter(w)
	if err := out.Write("mean_fitness", h.MeanFitnesses()); err != nil {
		return errors.Wrap(err, "failed to write mean_fitness")
	}
	if err := out.Write("best_fitness", h.BestFitnesses()); err != nil {
		return errors.Wrap(err, "failed to write best_fitness")
	}
	if err := out.Write("mean_variance", variance); err != nil {
		return errors.Wrap(err, "failed to write mean_variance")
	}
	return errors.Wrap(out.Close(), "failed to close npz writer")
}
