package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/cmd/commands"
	"github.com/pluqqy/numheadings/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath   string
	outputFormat string
	quiet        bool
	noColor      bool
	assumeYes    bool
)

var rootCmd = &cobra.Command{
	Use:   "numheadings",
	Short: "Manage heading numbering settings in markdown frontmatter",
	Long: `numheadings reads and writes the heading numbering settings stored in the
frontmatter of markdown documents. Settings live under a single compact
"number headings" key; documents using the older one-key-per-setting form
are still understood and can be migrated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, assumeYes)
		cli.SetConfigFlags(configPath, outputFormat)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of numheadings",
	Long:  `Display the current version of the numheadings CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "numheadings version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/numheadings/config.yaml)")
	pf.StringVarP(&outputFormat, "output", "o", "", "Output format: text, json or yaml")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	pf.BoolVar(&noColor, "no-color", false, "Disable symbols and colors in messages")
	pf.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every prompt")

	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewEncodeCommand())
	rootCmd.AddCommand(commands.NewDecodeCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
