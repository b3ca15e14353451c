// Package cmd provides command-line interface for disc inspection.
// This file contains commands for validating BDMV structures and
// exporting full disc reports.
package cmd

import (
	"fmt"
	"os"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// discCmd represents the parent command for all disc operations.
var discCmd = &cobra.Command{
	Use:   "disc",
	Short: "Inspect Blu-ray disc structures",
	Long: `Inspect Blu-ray disc (BDMV) directory structures.

Commands:
  info      Validate a disc and list its playlists and streams
  export    Write a full disc report as YAML

Examples:
  bdmvtools disc info /media/disc
  bdmvtools disc export /media/disc report.yaml`,
}

// discInfoCmd validates a disc root and prints its contents.
var discInfoCmd = &cobra.Command{
	Use:   "info [disc_path]",
	Short: "Validate a disc and list its playlists and streams",
	Long: `Validate a Blu-ray disc root and list its contents.

The path may point at the BDMV directory itself or at the directory
containing it. The playlist table marks the main playlist (largest
file) and shows the menu kind each playlist classified as. BD-J support
is reported when both object (BDJO) and archive (JAR) directories hold
files.

Example:
  bdmvtools disc info /media/disc
  bdmvtools disc info -v D:\BDMV`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd, args[0])
		if err != nil {
			return err
		}

		layout := session.Layout()
		fmt.Printf("Disc root: %s\n", layout.BDMVPath)
		if session.HasBDJSupport() {
			fmt.Printf("BD-J support: yes (%d applications)\n", len(session.Applications()))
		} else {
			fmt.Println("BD-J support: no")
		}
		fmt.Println()

		main, _ := session.MainPlaylist()
		models := session.Models()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"", "Playlist", "Size", "Kind", "Items"})
		for i, playlist := range session.Playlists() {
			marker := ""
			if playlist.Index == main.Index {
				marker = "*"
			}
			t.AppendRow(table.Row{
				marker,
				playlist.Name,
				common.FormatSize(playlist.Size),
				string(models[i].Kind),
				len(models[i].Items),
			})
		}
		t.Render()

		if streams := session.Streams(); len(streams) > 0 {
			fmt.Println()
			st := table.NewWriter()
			st.SetOutputMirror(os.Stdout)
			st.SetStyle(table.StyleLight)
			st.AppendHeader(table.Row{"Stream", "Size"})
			for _, stream := range streams {
				st.AppendRow(table.Row{stream.Name, common.FormatSize(stream.Size)})
			}
			st.Render()
		}

		return nil
	},
}

// discExportCmd writes the whole disc report to a YAML file.
var discExportCmd = &cobra.Command{
	Use:   "export [disc_path] [output_file]",
	Short: "Write a full disc report as YAML",
	Long: `Write a full disc report as YAML.

The report contains the validated layout, every playlist with its
classified menu model, the stream files and any detected BD-J
applications with their synthesized menus.

Example:
  bdmvtools disc export /media/disc report.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd, args[0])
		if err != nil {
			return err
		}

		exporter := bluray.NewReportExporter()
		if err := exporter.ExportReport(session, args[1]); err != nil {
			return fmt.Errorf("failed to export disc report: %w", err)
		}

		fmt.Printf("Report written to: %s\n", args[1])
		return nil
	},
}

// init initializes the disc command with its subcommands and flags.
func init() {
	rootCmd.AddCommand(discCmd)
	discCmd.AddCommand(discInfoCmd)
	discCmd.AddCommand(discExportCmd)

	addCommonFlags(discInfoCmd)
	addCommonFlags(discExportCmd)
}
