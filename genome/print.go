package genome

import (
	"fmt"
	"io"
)

// PrintGenotype writes a tabular dump of the genome's node and connection
// genes to w, for ad-hoc inspection during development and debugging.
func (g *Genome) PrintGenotype(w io.Writer) {
	fmt.Fprintln(w, "Node Genes:")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "ID", "KIND", "VALUE", "ACTIVATION")
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\n", n.ID, n.Kind, n.Value, n.Activation)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Connection Genes:")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "INNOV", "IN", "OUT", "WEIGHT", "ENABLED")
	for _, c := range g.Connections {
		fmt.Fprintf(w, "%d\t%d\t%d\t%g\t%t\n", c.Innovation, c.In, c.Out, c.Weight, c.Enabled)
	}
}
