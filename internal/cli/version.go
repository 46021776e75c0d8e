package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/edmtypes/pkg/manifest"
)

const modulePath = "github.com/mesh-intelligence/edmtypes"

// Version is the CLI release, set at build time with
// -ldflags "-X github.com/mesh-intelligence/edmtypes/internal/cli.Version=...".
var Version = "dev"

type versionInfo struct {
	Version         string `json:"version"`
	Module          string `json:"module"`
	ContractVersion string `json:"contract_version"`
	Fingerprint     string `json:"fingerprint"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI and contract versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:         Version,
				Module:          modulePath,
				ContractVersion: manifest.ContractVersion,
				Fingerprint:     a.m.Fingerprint().String(),
			}
			if a.flags.jsonMode {
				return printJSON(cmd, info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "edmtypes %s\nmodule: %s\ncontract: %s\nfingerprint: %s\n",
				info.Version, info.Module, info.ContractVersion, info.Fingerprint)
			return nil
		},
	}
}
