// Package check loads every catalog document through a viewer cycle and
// reports which ones fail.
package check

import (
	"context"
	"net/url"

	"github.com/ziadkadry99/docviewer/internal/progress"
	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// Result is the outcome for one catalog entry.
type Result struct {
	DisplayName string       `json:"display_name"`
	Filename    string       `json:"filename"`
	State       viewer.State `json:"state"`
	Title       string       `json:"title"`
}

// OK reports whether the document rendered.
func (r Result) OK() bool { return r.State == viewer.Rendered }

// Report is the outcome of a full check.
type Report struct {
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// Run performs one viewer cycle per catalog entry, in catalog order. A nil
// reporter is allowed.
func Run(ctx context.Context, ctrl *viewer.Controller, reporter progress.Reporter) (Report, error) {
	c := ctrl.Catalog()
	if reporter != nil {
		reporter.Start(len(c))
		defer reporter.Finish()
	}

	var report Report
	for i, entry := range c {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		page := &viewer.Page{}
		search := "?" + url.Values{viewer.DocParam: {entry.Filename}}.Encode()
		state := ctrl.Run(ctx, search, page)

		res := Result{
			DisplayName: entry.DisplayName,
			Filename:    entry.Filename,
			State:       state,
			Title:       page.Title(),
		}
		if !res.OK() {
			report.Failed++
		}
		report.Results = append(report.Results, res)

		if reporter != nil {
			reporter.Update(i+1, entry.Filename)
		}
	}
	return report, nil
}
