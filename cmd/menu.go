// Package cmd provides command-line interface for menu operations.
// This file contains commands for dumping classified menu models and
// for browsing them interactively.
package cmd

import (
	"fmt"
	"os"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// menuCmd represents the parent command for all menu operations.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Dump or browse synthesized disc menus",
	Long: `Dump or browse the menu models synthesized from a disc.

Commands:
  dump      Print the classified menu trees as YAML
  browse    Navigate the menus interactively in the terminal

Examples:
  bdmvtools menu dump /media/disc
  bdmvtools menu dump /media/disc menus.yaml
  bdmvtools menu browse /media/disc`,
}

// menuDumpCmd prints or writes the classified menu models.
var menuDumpCmd = &cobra.Command{
	Use:   "dump [disc_path] [output_file]",
	Short: "Print the classified menu trees as YAML",
	Long: `Print the classified menu trees as YAML.

One menu model is emitted per playlist, tagged with the classification
rule that produced it (standard_main or standard_content). BD-J
application menus are included when the disc carries them. With an
output file argument the YAML is written there instead of stdout.

Example:
  bdmvtools menu dump /media/disc
  bdmvtools menu dump /media/disc menus.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd, args[0])
		if err != nil {
			return err
		}

		models := session.Models()
		for _, app := range session.Applications() {
			models = append(models, app.Menu)
		}

		exporter := bluray.NewReportExporter()
		if len(args) == 2 {
			if err := exporter.ExportMenuModels(models, args[1]); err != nil {
				return fmt.Errorf("failed to write menu models: %w", err)
			}
			fmt.Printf("Menu models written to: %s\n", args[1])
			return nil
		}
		return exporter.WriteMenuModels(models, os.Stdout)
	},
}

// menuBrowseCmd opens the interactive terminal navigator.
var menuBrowseCmd = &cobra.Command{
	Use:   "browse [disc_path]",
	Short: "Navigate the menus interactively in the terminal",
	Long: `Navigate the synthesized disc menus interactively.

Keys:
  up/down     Move the cursor
  enter       Select the current item
  esc         Back to the previous menu
  home        Back to the root menu
  tab         Toggle between standard and BD-J menus (when available)
  q           Quit

Selecting a playable item displays the action token a media player
would receive; nothing is played, playback is an external concern.

Example:
  bdmvtools menu browse /media/disc`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd, args[0])
		if err != nil {
			return err
		}
		if session.MainMenu() == nil {
			return fmt.Errorf("disc has no classifiable playlists")
		}

		program := tea.NewProgram(newBrowseModel(session))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browse UI failed: %w", err)
		}
		return nil
	},
}

// init initializes the menu command with its subcommands and flags.
func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.AddCommand(menuDumpCmd)
	menuCmd.AddCommand(menuBrowseCmd)

	addCommonFlags(menuDumpCmd)
	addCommonFlags(menuBrowseCmd)
}
