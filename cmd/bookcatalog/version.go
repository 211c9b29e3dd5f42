package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionJSONPayload struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionJSONPayload{
				Version: version,
				Commit:  commit,
				Built:   date,
				Go:      runtime.Version(),
			}
			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bookcatalog %s (%s)\ncommit: %s\nbuilt:  %s\n", info.Version, info.Go, info.Commit, info.Built)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output build information as JSON")
	return cmd
}
