package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotsig/sr25519/suri"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <suri>",
		Short: "Resolve a secret URI and print its keypair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := suri.Keypair(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Secret key: 0x%s\n", hex.EncodeToString(kp.Secret().Bytes()))
			fmt.Printf("Public key: 0x%s\n", hex.EncodeToString(kp.Public().Bytes()))
			return nil
		},
	}
}
