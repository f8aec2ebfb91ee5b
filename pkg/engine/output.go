package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/wildfunctions/random_art/pkg/art"
	"github.com/wildfunctions/random_art/pkg/expr"
)

// ChannelReport summarizes one channel tree.
type ChannelReport struct {
	Name       string  `json:"name"`
	Expr       string  `json:"expr"`
	LaTeX      string  `json:"latex"`
	Nodes      int     `json:"nodes"`
	Depth      int     `json:"depth"`
	Complexity float64 `json:"complexity"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config      Config          `json:"config"`
	Seed        string          `json:"seed"`
	SeedHash    uint64          `json:"seed_hash"`
	Description string          `json:"description"`
	Channels    []ChannelReport `json:"channels"`
	NodeCount   int             `json:"node_count"`
	Times       []float64       `json:"times"`
	Files       []string        `json:"files,omitempty"`
	Elapsed     time.Duration   `json:"elapsed_ns"`
	Timestamp   time.Time       `json:"timestamp"`
}

func newReport(cfg Config, seed string, hash uint64, ch art.Channels) FinalReport {
	r := FinalReport{
		Config:      cfg,
		Seed:        seed,
		SeedHash:    hash,
		Description: ch.Description(),
		NodeCount:   ch.NodeCount(),
		Timestamp:   time.Now().UTC(),
	}
	r.Config.Seed = seed
	for i, tree := range ch.Trees() {
		r.Channels = append(r.Channels, ChannelReport{
			Name:       art.Names[i],
			Expr:       tree.String(),
			LaTeX:      tree.LaTeX(),
			Nodes:      tree.NodeCount(),
			Depth:      tree.Depth(),
			Complexity: expr.WeightedComplexity(tree),
		})
	}
	return r
}

// WriteChannelSummary writes one line of size metrics for a channel.
func WriteChannelSummary(w io.Writer, c ChannelReport) {
	fmt.Fprintf(w, "  %s: %4d nodes, depth %2d, complexity %7.1f\n",
		c.Name, c.Nodes, c.Depth, c.Complexity)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	fmt.Fprintln(w, "\n========== RANDOM ART ==========")
	fmt.Fprintf(w, "Seed:      %s (%016x)\n", r.Seed, r.SeedHash)
	fmt.Fprintf(w, "Size:      %dx%d\n", r.Config.Width, r.Config.Height)
	fmt.Fprintf(w, "Depth:     %d\n", r.Config.Depth)
	fmt.Fprintf(w, "Frames:    %d\n", len(r.Times))
	fmt.Fprintf(w, "Nodes:     %d\n", r.NodeCount)
	for _, c := range r.Channels {
		WriteChannelSummary(w, c)
	}
	fmt.Fprintln(w, r.Description)
	for _, f := range r.Files {
		fmt.Fprintf(w, "File:      %s\n", f)
	}
	fmt.Fprintf(w, "Elapsed:   %v\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w, "================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
