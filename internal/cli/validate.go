package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentdeploy-dev/agentdeploy/internal/schema"
	"github.com/agentdeploy-dev/agentdeploy/pkg/printer"
)

var validateQuiet bool

var ValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate agent definition files",
	Long: `Validate one or more agent YAML definitions against the agent schema.

Errors block deployment; warnings and info notes do not. All problems in a
file are reported in a single run. The command exits non-zero if any file
fails to parse or has at least one error.

Example:
  adctl validate agents/support.yaml
  adctl validate agents/*.yaml --quiet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	type fileResult struct {
		path     string
		agent    string
		parseErr error
		result   *schema.Result
	}

	results := make([]fileResult, 0, len(args))
	failed := 0

	for _, path := range args {
		fr := fileResult{path: path}
		doc, err := schema.Load(path)
		if err != nil {
			fr.parseErr = err
			failed++
			// Unparseable documents are fatal, distinct from schema
			// diagnostics.
			var parseErr *schema.ParseError
			if errors.As(err, &parseErr) {
				err = parseErr
			}
			_, _ = fmt.Fprintf(out, "%s:\n  fatal: %v\n", path, err)
			results = append(results, fr)
			continue
		}

		fr.agent = doc.Definition.Name
		fr.result = schema.Validate(doc)
		if !fr.result.Valid() {
			failed++
		}
		printer.PrintDiagnostics(out, path, fr.result, validateQuiet)
		results = append(results, fr)
	}

	if len(args) > 1 {
		_, _ = fmt.Fprintln(out)
		table := printer.NewTablePrinter(out)
		table.SetHeaders("File", "Agent", "Errors", "Warnings", "Status")
		for _, fr := range results {
			if fr.parseErr != nil {
				table.AddRow(fr.path, "-", "-", "-", "ParseError")
				continue
			}
			status := "Valid"
			if !fr.result.Valid() {
				status = "Invalid"
			}
			table.AddRow(fr.path, fr.agent, len(fr.result.Errors()), len(fr.result.Warnings()), status)
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d file(s)", failed, len(args))
	}
	return nil
}

func init() {
	ValidateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only report errors, suppress warnings and info notes")
}
