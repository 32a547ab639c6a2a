package check

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/docviewer/internal/catalog"
	"github.com/ziadkadry99/docviewer/internal/progress"
	"github.com/ziadkadry99/docviewer/internal/viewer"
)

func newController(docs fstest.MapFS, c catalog.Catalog) *viewer.Controller {
	return viewer.NewController(viewer.ControllerOptions{
		Catalog:  c,
		Loader:   viewer.NewFSLoader(docs),
		Renderer: viewer.NewRenderer(viewer.RendererOptions{Catalog: c, SiteName: "Apex SDK"}),
	})
}

func TestRun(t *testing.T) {
	docs := fstest.MapFS{
		"QUICK_START.md": {Data: []byte("# Quick Start")},
		"API.md":         {Data: []byte("# API")},
	}
	c := catalog.Catalog{
		{DisplayName: "Quick Start", Filename: "QUICK_START.md"},
		{DisplayName: "API Reference", Filename: "API.md"},
		{DisplayName: "Roadmap", Filename: "ROADMAP.md"},
	}

	var out bytes.Buffer
	reporter := &progress.CIReporter{Out: &out, Description: "Checking"}

	report, err := Run(context.Background(), newController(docs, c), reporter)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(report.Results))
	}

	if report.Failed != 1 {
		t.Errorf("Failed = %d, want 1", report.Failed)
	}
	if !report.Results[0].OK() || !report.Results[1].OK() {
		t.Errorf("first two documents should load: %+v", report.Results[:2])
	}
	if got := report.Results[0].Title; got != "Quick Start - Apex SDK" {
		t.Errorf("title = %q", got)
	}
	if report.Results[2].OK() || report.Results[2].State != viewer.Errored {
		t.Errorf("ROADMAP.md result = %+v, want errored", report.Results[2])
	}

	if !strings.Contains(out.String(), "[3/3] ROADMAP.md") {
		t.Errorf("progress output = %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "Checking: done\n") {
		t.Errorf("progress output should end with done line: %q", out.String())
	}
}

func TestRunFilenameNeedingEscape(t *testing.T) {
	docs := fstest.MapFS{"a&b.md": {Data: []byte("x")}}
	c := catalog.Catalog{{DisplayName: "A and B", Filename: "a&b.md"}}

	report, err := Run(context.Background(), newController(docs, c), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed != 0 {
		t.Errorf("Failed = %d, want 0: %+v", report.Failed, report.Results)
	}
}

func TestRunCancelled(t *testing.T) {
	c := catalog.Default()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, newController(fstest.MapFS{}, c), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(report.Results) != 0 {
		t.Errorf("results = %+v, want none", report.Results)
	}
}
