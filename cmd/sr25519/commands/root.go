// Package commands implements the sr25519 command line tool: key
// generation, inspection, signing, verification and derivation over
// hex-encoded key material.
package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "sr25519",
		Short:         "sr25519 key management, signing and derivation",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(keygenCmd(), inspectCmd(), signCmd(), verifyCmd(), deriveCmd())
	return root.Execute()
}
