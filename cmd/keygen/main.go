// Command keygen generates server secrets and hashes passwords for
// manual database fixes. It never touches the database itself.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"medshare/internal/crypto"
)

var rootCmd = &cobra.Command{
	Use:           "keygen",
	Short:         "MedShare secret generation utility",
	Long:          "Generates the ENCRYPTION_KEY and JWT_SECRET values the server expects, and hashes passwords with the server's credential scheme.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh ENCRYPTION_KEY and JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		encKey, err := randomHex(32)
		if err != nil {
			return fmt.Errorf("generating encryption key: %w", err)
		}
		jwtSecret, err := randomHex(48)
		if err != nil {
			return fmt.Errorf("generating jwt secret: %w", err)
		}

		color.Yellow("Add these to the server environment. The encryption key cannot be rotated without re-encrypting stored records.")
		fmt.Printf("ENCRYPTION_KEY=%s\n", encKey)
		fmt.Printf("JWT_SECRET=%s\n", jwtSecret)
		return nil
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash a password with the server's credential scheme",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		if len(password) == 0 {
			return fmt.Errorf("password must not be empty")
		}

		digest, err := crypto.HashSecret(string(password))
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		color.Green("Digest:")
		fmt.Println(digest)
		return nil
	},
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func main() {
	rootCmd.AddCommand(generateCmd, hashCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
