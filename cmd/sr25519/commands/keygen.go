package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotsig/sr25519"
)

func keygenCmd() *cobra.Command {
	var words int
	var password string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a mnemonic and print its keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			var bits int
			switch words {
			case 12:
				bits = 128
			case 24:
				bits = 256
			default:
				return fmt.Errorf("unsupported word count %d (use 12 or 24)", words)
			}

			phrase, err := sr25519.GenerateMnemonic(bits)
			if err != nil {
				return err
			}
			seed, err := sr25519.SeedFromMnemonic(phrase, password)
			if err != nil {
				return err
			}
			kp, err := sr25519.NewKeypairFromSeed(seed)
			if err != nil {
				return err
			}

			fmt.Printf("Phrase:     %s\n", phrase)
			fmt.Printf("Seed:       0x%s\n", hex.EncodeToString(seed))
			fmt.Printf("Secret key: 0x%s\n", hex.EncodeToString(kp.Secret().Bytes()))
			fmt.Printf("Public key: 0x%s\n", hex.EncodeToString(kp.Public().Bytes()))
			return nil
		},
	}

	cmd.Flags().IntVar(&words, "words", 12, "mnemonic length (12 or 24)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "derivation password")
	return cmd
}
