// Command sm2 is a thin front end over the sm2 package: key generation,
// encryption, and decryption with the byte/hex contract of the library.
// Plaintext is passed through verbatim, including empty input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-sm2"
)

var (
	publicKeyHex  string
	privateKeyHex string
	layout        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sm2",
		Short:         "SM2 public-key encryption (sm2p256v1)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print it as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := sm2.GenerateKeyPairHex()
			if err != nil {
				return err
			}
			fmt.Printf("Private Key: %s\n", priv)
			fmt.Printf("Public Key: %s\n", pub)
			return nil
		},
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Encrypt plaintext to a public key, printing hex ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(layout)
			if err != nil {
				return err
			}
			out, err := sm2.EncryptHex([]byte(args[0]), publicKeyHex, mode)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	encryptCmd.Flags().StringVar(&publicKeyHex, "public-key", "", "recipient public key (130 hex characters)")
	encryptCmd.Flags().StringVar(&layout, "mode", "c1c3c2", "ciphertext layout: c1c3c2 or c1c2c3")
	_ = encryptCmd.MarkFlagRequired("public-key")

	decryptCmd := &cobra.Command{
		Use:   "decrypt <ciphertext-hex>",
		Short: "Decrypt a hex ciphertext, printing the plaintext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sm2.DecryptHex(args[0], privateKeyHex)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	decryptCmd.Flags().StringVar(&privateKeyHex, "private-key", "", "private key (64 hex characters)")
	_ = decryptCmd.MarkFlagRequired("private-key")

	rootCmd.AddCommand(keygenCmd, encryptCmd, decryptCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseMode(s string) (sm2.Mode, error) {
	switch s {
	case "c1c3c2", "C1C3C2":
		return sm2.ModeC1C3C2, nil
	case "c1c2c3", "C1C2C3":
		return sm2.ModeC1C2C3, nil
	default:
		return 0, fmt.Errorf("unknown ciphertext layout %q", s)
	}
}
