// Package cmd provides shared session construction for all commands.
package cmd

import (
	"fmt"

	"github.com/bdmvtools/bdmvtools/pkg/bdj"
	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/spf13/cobra"
)

// addCommonFlags registers the flags every disc-reading command shares.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with detailed scan information")
	cmd.Flags().StringP("config", "c", "", "Path to a YAML file overriding the heuristic defaults")
}

// loadSession applies the common flags and loads a disc session from
// rootPath. The returned session has been fully scanned and classified.
func loadSession(cmd *cobra.Command, rootPath string) (*bluray.Session, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("error getting verbose flag: %w", err)
	}
	common.SetVerboseMode(verbose)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("error getting config flag: %w", err)
	}

	classifierConfig := bluray.DefaultClassifierConfig()
	detectorConfig := bdj.DefaultDetectorConfig()
	if configPath != "" {
		if classifierConfig, err = bluray.LoadClassifierConfig(configPath); err != nil {
			return nil, err
		}
		if detectorConfig, err = bdj.LoadDetectorConfig(configPath); err != nil {
			return nil, err
		}
	}

	session := bluray.NewSession(classifierConfig, bdj.NewDetector(detectorConfig))
	if err := session.Load(rootPath); err != nil {
		return nil, fmt.Errorf("failed to load disc: %w", err)
	}
	return session, nil
}
