package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotsig/sr25519"
)

func verifyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "verify <public-hex> <signature-hex> [message]",
		Short: "Verify a signature against a public key",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := decodeHex(args[0])
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			sig, err := decodeHex(args[1])
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			msg, err := readMessage(args[2:], file)
			if err != nil {
				return err
			}

			if !sr25519.VerifyBytes(sig, msg, pub) {
				return errors.New("signature verification failed")
			}
			fmt.Println("signature valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file instead")
	return cmd
}
