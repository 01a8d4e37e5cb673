// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes command summaries. Colors are dropped automatically when
// the output is not a terminal or NO_COLOR is set.
type printer struct {
	w io.Writer

	headingC *color.Color
	label    *color.Color
	ok       *color.Color
	warning  *color.Color
	bad      *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:        w,
		headingC: color.New(color.FgCyan, color.Bold),
		label:    color.New(color.FgCyan),
		ok:       color.New(color.FgGreen),
		warning:  color.New(color.FgYellow),
		bad:      color.New(color.FgRed, color.Bold),
	}
}

func (p *printer) heading(title string) {
	_, _ = p.headingC.Fprintf(p.w, "\n%s\n", title)
}

func (p *printer) line(label string, value any) {
	_, _ = fmt.Fprintf(p.w, "  %s %v\n", p.label.Sprintf("%-16s", label+":"), value)
}

func (p *printer) detail(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "    "+format+"\n", args...)
}

func (p *printer) raw(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *printer) success(format string, args ...any) {
	_, _ = p.ok.Fprintf(p.w, "✓ "+format+"\n", args...)
}

func (p *printer) warn(format string, args ...any) {
	_, _ = p.warning.Fprintf(p.w, "! "+format+"\n", args...)
}

func (p *printer) failure(format string, args ...any) {
	_, _ = p.bad.Fprintf(p.w, "✗ "+format+"\n", args...)
}
