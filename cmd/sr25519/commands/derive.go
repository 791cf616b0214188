package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotsig/sr25519"
	"github.com/dotsig/sr25519/suri"
)

func deriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <public-hex> <path>",
		Short: "Soft-derive a child public key along a path",
		Long: "Derive a child public key from a parent public key and a soft " +
			"derivation path such as /stash/0. Hard junctions need the secret; " +
			"use inspect with a full secret URI for those.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex(args[0])
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			pub, err := sr25519.NewPublicKey(raw)
			if err != nil {
				return err
			}
			path, err := suri.ParsePath(args[1])
			if err != nil {
				return err
			}
			child, err := suri.DerivePublic(pub, path)
			if err != nil {
				return err
			}
			fmt.Printf("0x%s\n", hex.EncodeToString(child.Bytes()))
			return nil
		},
	}
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
