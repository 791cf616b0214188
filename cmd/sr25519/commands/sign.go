package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsig/sr25519/suri"
)

func signCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sign <suri> [message]",
		Short: "Sign a message with the key a secret URI resolves to",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(args[1:], file)
			if err != nil {
				return err
			}
			kp, err := suri.Keypair(args[0])
			if err != nil {
				return err
			}
			sig, err := kp.Sign(nil, msg)
			if err != nil {
				return err
			}
			fmt.Printf("0x%s\n", hex.EncodeToString(sig.Bytes()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file instead")
	return cmd
}

func readMessage(args []string, file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	return nil, fmt.Errorf("a message argument or --file is required")
}
