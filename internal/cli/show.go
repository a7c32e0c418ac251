package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentdeploy-dev/agentdeploy/internal/schema"
	"github.com/agentdeploy-dev/agentdeploy/pkg/printer"
)

var showOutput string

var ShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a parsed agent definition",
	Long: `Parse an agent YAML definition and print its canonical form.

Example:
  adctl show agents/support.yaml
  adctl show agents/support.yaml -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := schema.Load(args[0])
	if err != nil {
		return err
	}

	p := printer.New(printer.OutputType(showOutput))
	p.SetOutput(cmd.OutOrStdout())
	return p.Print(doc.Definition)
}

func init() {
	ShowCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml, json)")
}
