package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentdeploy-dev/agentdeploy/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "adctl",
	Short: "Declarative agent deployment CLI",
	Long: `adctl validates declarative agent YAML definitions and deploys them
to a managed agent service project endpoint.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cli.ValidateCmd)
	rootCmd.AddCommand(cli.DeployCmd)
	rootCmd.AddCommand(cli.ShowCmd)
	rootCmd.AddCommand(cli.InitCmd)
	rootCmd.AddCommand(cli.VersionCmd)
}
