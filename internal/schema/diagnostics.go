package schema

import "fmt"

// Severity classifies a diagnostic. Errors block deployment; warnings and
// info notes do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a single validation finding at a document path such as
// model.connection.endpoint or tools[2].url.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Path, d.Message)
}

// Result accumulates diagnostics from a validation run. Checks never
// short-circuit, so a single run reports every problem found.
type Result struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Valid reports whether the run produced no error-severity diagnostics.
// Warnings and info notes are permitted in a valid document.
func (r *Result) Valid() bool {
	return len(r.Errors()) == 0
}

// Errors returns the error-severity diagnostics.
func (r *Result) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity diagnostics.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

// Infos returns the info-severity diagnostics.
func (r *Result) Infos() []Diagnostic {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

func (r *Result) errorf(path, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityError,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Result) warnf(path, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Result) infof(path, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}
