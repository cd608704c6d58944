package types

import (
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------
//
// Diagnostics record locally anomalous conditions that did not stop the
// decode: a non-standard key, a clamped record end, a short Translation
// value. They are opt-in (Options.CollectDiagnostics); with collection off
// the decoder holds a nil collector and pays nothing.

// Severity classifies how unusual a diagnostic is.
type Severity string

const (
	SevInfo    Severity = "INFO"    // unusual but well-formed
	SevWarning Severity = "WARNING" // data was skipped, clamped or reinterpreted
)

// Diagnostic is one non-fatal issue.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Offset    int      `json:"offset"`    // absolute byte offset in the input
	Structure string   `json:"structure"` // record kind, e.g. "StringTable"
	Issue     string   `json:"issue"`
}

// DiagSummary counts diagnostics by severity.
type DiagSummary struct {
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report is the result of an inspecting decode.
type Report struct {
	Root        *RootInfo    `json:"root"`
	End         int          `json:"end"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Diagnostics: []Diagnostic{}}
}

// Add appends d and updates the summary.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// Finalize orders diagnostics by offset. Ties keep detection order.
func (r *Report) Finalize() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		return r.Diagnostics[i].Offset < r.Diagnostics[j].Offset
	})
}

// HasWarnings reports whether any warning was recorded.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// FormatText returns a human-readable report.
func (r *Report) FormatText() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 79) + "\n")
	b.WriteString("Version Resource Diagnostic Report\n")
	b.WriteString(strings.Repeat("=", 79) + "\n\n")

	if r.Root != nil {
		fmt.Fprintf(&b, "Root:      %s (wLength %d)\n", r.Root.Key.Text(), r.Root.Length)
	}
	fmt.Fprintf(&b, "End:       %#x\n\n", r.End)

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	fmt.Fprintf(&b, "  Warnings: %d\n", r.Summary.Warnings)
	fmt.Fprintf(&b, "  Info:     %d\n\n", r.Summary.Info)

	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	b.WriteString("DIAGNOSTICS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(r.FormatTextCompact())
	return b.String()
}

// FormatTextCompact returns one line per diagnostic.
func (r *Report) FormatTextCompact() string {
	var b strings.Builder
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "0x%08X [%s/%s] %s\n", d.Offset, d.Severity, d.Structure, d.Issue)
	}
	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
	}
	return b.String()
}
