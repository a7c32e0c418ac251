package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeploy-dev/agentdeploy/internal/schema"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	pathStyle    = lipgloss.NewStyle().Faint(true)
)

func severityLabel(sev schema.Severity) string {
	switch sev {
	case schema.SeverityError:
		return errorStyle.Render("error")
	case schema.SeverityWarning:
		return warningStyle.Render("warning")
	default:
		return infoStyle.Render("info")
	}
}

// PrintDiagnostic writes a single diagnostic line.
func PrintDiagnostic(out io.Writer, d schema.Diagnostic) {
	if d.Path == "" {
		_, _ = fmt.Fprintf(out, "  %s: %s\n", severityLabel(d.Severity), d.Message)
		return
	}
	_, _ = fmt.Fprintf(out, "  %s: %s: %s\n", severityLabel(d.Severity), pathStyle.Render(d.Path), d.Message)
}

// PrintDiagnostics writes the validation result for one file: errors
// first, then warnings, then info notes, followed by a summary line.
func PrintDiagnostics(out io.Writer, file string, res *schema.Result, quiet bool) {
	errs := res.Errors()
	warns := res.Warnings()
	infos := res.Infos()

	_, _ = fmt.Fprintf(out, "%s:\n", file)
	for _, d := range errs {
		PrintDiagnostic(out, d)
	}
	if !quiet {
		for _, d := range warns {
			PrintDiagnostic(out, d)
		}
		for _, d := range infos {
			PrintDiagnostic(out, d)
		}
	}

	if len(errs) > 0 {
		_, _ = fmt.Fprintf(out, "  %d error(s), %d warning(s)\n", len(errs), len(warns))
		return
	}
	_, _ = fmt.Fprintf(out, "  valid (%d warning(s), %d note(s))\n", len(warns), len(infos))
}
