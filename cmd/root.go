// Package cmd provides the command-line interface for BDMVTools.
// BDMVTools inspects Blu-ray disc (BDMV) directory structures and
// renders their menus as navigable in-application menus without
// executing any disc-native interactive code.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the BDMVTools application.
var rootCmd = &cobra.Command{
	Use:   "bdmvtools",
	Short: "Tools for inspecting and navigating Blu-ray BDMV menu structures",
	Long: `BDMVTools - A collection of utilities for inspecting and navigating
Blu-ray disc (BDMV) menu structures.

The playlist (.mpls) and BD-J object (.bdjo) binary formats are not
decoded; menus are synthesized from file sizes, names and directory
contents. Media playback, drive mounting and BD-J execution are left to
external tools.

Currently supports:
  - Disc structure validation and playlist/stream enumeration
  - Heuristic menu classification (main menu vs. content with chapters)
  - BD-J application detection and best-effort metadata extraction
  - Interactive terminal menu navigation
  - YAML export of disc reports and menu models

Examples:
  bdmvtools disc info /media/disc
  bdmvtools disc export /media/disc report.yaml
  bdmvtools menu dump /media/disc
  bdmvtools menu browse /media/disc
  bdmvtools bdj list /media/disc

Use 'bdmvtools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
