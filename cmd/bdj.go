// Package cmd provides command-line interface for BD-J inspection.
// This file contains commands for listing detected BD-J applications.
package cmd

import (
	"fmt"
	"os"

	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// bdjCmd represents the parent command for all BD-J operations.
var bdjCmd = &cobra.Command{
	Use:   "bdj",
	Short: "Inspect BD-J (Blu-ray Disc Java) applications",
	Long: `Inspect BD-J (Blu-ray Disc Java) interactive menu applications.

Application metadata is inferred from object (BDJO) and archive (JAR)
file presence and sizes; the object format is never decoded and no
application code is executed.

Commands:
  list      List detected applications and their archives

Examples:
  bdmvtools bdj list /media/disc`,
}

// bdjListCmd lists the detected applications on a disc.
var bdjListCmd = &cobra.Command{
	Use:   "list [disc_path]",
	Short: "List detected BD-J applications and their archives",
	Long: `List the BD-J applications detected on a disc.

For each application the object file, its heuristic priority (derived
from size rank, largest first), the synthesized menu item count and
whether any archive carries a readable manifest entry are shown. Every
archive on the disc is associated with every application because the
object format needed to correlate them is not decoded.

Example:
  bdmvtools bdj list /media/disc
  bdmvtools bdj list -v /media/disc`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd, args[0])
		if err != nil {
			return err
		}

		if !session.HasBDJSupport() {
			fmt.Println("No BD-J support on this disc")
			return nil
		}

		apps := session.Applications()
		fmt.Printf("Found %d BD-J applications\n\n", len(apps))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Object", "Size", "Priority", "Menu items", "Archives", "Manifest"})
		for _, app := range apps {
			manifest := "no"
			if app.HasManifest {
				manifest = "yes"
			}
			t.AppendRow(table.Row{
				app.ObjectName,
				common.FormatSize(app.ObjectSize),
				app.Priority,
				len(app.Menu.Items),
				len(app.Archives),
				manifest,
			})
		}
		t.Render()

		return nil
	},
}

// init initializes the BD-J command with its subcommands and flags.
func init() {
	rootCmd.AddCommand(bdjCmd)
	bdjCmd.AddCommand(bdjListCmd)

	addCommonFlags(bdjListCmd)
}
