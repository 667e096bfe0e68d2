// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "golang.org/x/text/unicode/bidi"

// bidiRun is a contiguous rune range with one resolved direction.
type bidiRun struct {
	start, end int // rune indices, end exclusive
	rtl        bool
}

// splitRuns resolves the bidi embedding levels of the text and returns its
// direction runs in logical order. Neutral text resolves to a single LTR
// run.
func splitRuns(runes []rune) []bidiRun {
	if len(runes) == 0 {
		return nil
	}

	var p bidi.Paragraph
	_, _ = p.SetString(string(runes), bidi.DefaultDirection(bidi.Neutral))
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []bidiRun{{start: 0, end: len(runes)}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns rune indices, start and end inclusive.
		start, end := run.Pos()
		if end >= len(runes) {
			end = len(runes) - 1
		}
		runs = append(runs, bidiRun{
			start: start,
			end:   end + 1,
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
