package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentdeploy-dev/agentdeploy/pkg/printer"
)

var (
	initName    string
	initKind    string
	initModelID string
)

const starterTemplate = `kind: %s
name: %s
description: Describe what this agent does.
instructions: |
  You are a helpful assistant.
model:
  id: %s
  connection:
    kind: remote
    endpoint: =Env.PROJECT_ENDPOINT
tools: []
`

var InitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a starter agent definition",
	Long: `Write a starter agent.yaml into the given directory (default ".").

Example:
  adctl init agents --name support-agent --model gpt-4o`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "agent.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	content := fmt.Sprintf(starterTemplate, initKind, initName, initModelID)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", path))
	return nil
}

func init() {
	InitCmd.Flags().StringVar(&initName, "name", "my-agent", "Agent name")
	InitCmd.Flags().StringVar(&initKind, "kind", "Agent", "Definition kind (Prompt, Agent)")
	InitCmd.Flags().StringVar(&initModelID, "model", "gpt-4o", "Model identifier")
}
