// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the state of a sliding pane container.

A SlidingPane lays out a fixed pane and a sliding pane side by side
when they fit, and lets the sliding pane slide over the fixed pane
when they do not. The slide offset runs from 0, closed, to 1, open.

SlidingPane does not draw. A host measures and lays it out, delivers
pointer events, calls Frame on every animation frame while one is
requested, and renders the pane rectangles, clips and dim overlays
it reports:

	sp := widget.NewSlidingPane(metric, widget.DefaultConfig())
	sp.Measure(layout.Exact(w), layout.Exact(h), children)
	sp.Layout()
	for _, e := range events {
		if !sp.Intercept(e) {
			// Deliver e to the pane contents, and to sp.Event if
			// no pane content consumed it.
		}
	}
	if sp.Frame(now) {
		// Schedule another frame.
	}
*/
package widget
