package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = "same seed"
	cfg.Width = 10
	cfg.Height = 10
	cfg.Depth = 5
	cfg.Workers = 2
	cfg.Output = filepath.Join(t.TempDir(), "art.png")
	cfg.Log = io.Discard
	return cfg
}

func TestEngine_SmallRun(t *testing.T) {
	cfg := testConfig(t)

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Channels) != 3 {
		t.Fatalf("Expected 3 channels, got %d", len(report.Channels))
	}
	if !strings.HasPrefix(report.Description, "R: ") {
		t.Errorf("unexpected description %q", report.Description)
	}
	if len(report.Files) != 1 || report.Files[0] != cfg.Output {
		t.Fatalf("Files = %v, want [%s]", report.Files, cfg.Output)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("decoded bounds %v, want 10x10", b)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	run := func() (FinalReport, []byte) {
		cfg := testConfig(t)
		e, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		report, err := e.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(cfg.Output)
		if err != nil {
			t.Fatal(err)
		}
		return report, data
	}

	r1, png1 := run()
	r2, png2 := run()
	if r1.Description != r2.Description {
		t.Error("descriptions differ between identical runs")
	}
	if !bytes.Equal(png1, png2) {
		t.Error("PNG output differs between identical runs")
	}
}

func TestEngine_RandomSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = ""
	cfg.Output = ""

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if e.Seed() == "" {
		t.Fatal("expected a generated seed")
	}
	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Seed != e.Seed() || report.Config.Seed != e.Seed() {
		t.Errorf("report seed %q / %q, want %q", report.Seed, report.Config.Seed, e.Seed())
	}
	if len(report.Files) != 0 {
		t.Errorf("no output path set, but wrote %v", report.Files)
	}
}

func TestEngine_Frames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 3
	cfg.Easing = "inoutsine"
	cfg.TimeFrom = -1
	cfg.TimeTo = 1
	cfg.Output = filepath.Join(t.TempDir(), "anim.bmp")
	cfg.DotFile = filepath.Join(t.TempDir(), "trees.dot")

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Times) != 3 || report.Times[0] != -1 || report.Times[2] != 1 {
		t.Errorf("Times = %v", report.Times)
	}
	// three frames plus the dot file
	if len(report.Files) != 4 {
		t.Fatalf("Files = %v", report.Files)
	}
	for _, f := range report.Files {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected %s to exist: %v", f, err)
		}
	}
	if !strings.HasSuffix(report.Files[0], "anim_0001.bmp") {
		t.Errorf("first frame path %q", report.Files[0])
	}

	dot, err := os.ReadFile(cfg.DotFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "digraph") {
		t.Error("dot file missing digraph header")
	}
}

func TestEngine_FoldMatchesUnfolded(t *testing.T) {
	outputs := map[bool][]byte{}
	for _, fold := range []bool{false, true} {
		cfg := testConfig(t)
		cfg.Seed = "fold check"
		cfg.Depth = 10
		cfg.Width = 24
		cfg.Height = 16
		cfg.Fold = fold
		e, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := e.Run(context.Background()); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(cfg.Output)
		if err != nil {
			t.Fatal(err)
		}
		outputs[fold] = data
	}
	if !bytes.Equal(outputs[false], outputs[true]) {
		t.Error("folding changed the rendered image")
	}
}

func TestEngine_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestEngine_InvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero frames", func(c *Config) { c.Frames = 0 }},
		{"bad format", func(c *Config) { c.Format = "xml" }},
		{"bad easing", func(c *Config) { c.Easing = "nonexistent" }},
		{"bad extension", func(c *Config) { c.Output = "out.gif" }},
		{"nan time", func(c *Config) { c.TimeTo = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if _, err := New(cfg); err == nil {
				t.Errorf("Expected error for %s", tc.name)
			}
		})
	}
}

func TestEngine_JSONFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "json"

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSONFinal(&buf, report); err != nil {
		t.Fatal(err)
	}
	var decoded FinalReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Description != report.Description {
		t.Error("description lost in JSON report")
	}
}

func TestWriteTextFinal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output = ""
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	WriteTextFinal(&buf, report)
	out := buf.String()
	for _, want := range []string{"Seed:      same seed", "Size:      10x10", "R: ", "G: ", "B: "} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}
