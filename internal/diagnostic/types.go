package diagnostic

import (
	"cmp"
	"fmt"
	"slices"
)

// Diagnostic codes reported by the mime.types reader.
const (
	CodeMalformedLine      = "MALFORMED_LINE"
	CodeLeadingDot         = "LEADING_DOT"
	CodeEmptyExtension     = "EMPTY_EXTENSION"
	CodeDuplicateExtension = "DUPLICATE_EXTENSION"
	CodeEmptyTable         = "EMPTY_TABLE"
)

// Diagnostics holds all diagnostic information collected during a run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Line is the 1-based source line, or 0 if not tied to a line.
	Line int
}

//go:generate go tool stringer -type=Severity -trimprefix=Severity -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Line:     line,
	})
}

// All returns every diagnostic ordered by line, keeping insertion order
// for diagnostics on the same line.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Warnings)+len(d.Infos))
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	slices.SortStableFunc(all, func(a, b Diagnostic) int {
		return cmp.Compare(a.Line, b.Line)
	})

	return all
}

// Codes returns the codes of All, in the same order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, 0, len(all))
	for _, diag := range all {
		codes = append(codes, diag.Code)
	}

	return codes
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, msg)
	}

	return msg
}
