package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redchainhq/redchain/internal/cli"
	"github.com/redchainhq/redchain/internal/keyring"
)

// KeyringSetCmd stores the coach API key in the OS keyring
type KeyringSetCmd struct {
	Key string `arg:"" help:"Coach API key to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.Key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	fmt.Println("✓ API key stored successfully in OS keyring")
	fmt.Println("  'redchain review' will now request a coach debrief")
	return nil
}

// KeyringShowCmd reports whether a key is stored, with most of it masked
type KeyringShowCmd struct{}

func (cmd *KeyringShowCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no api key found in keyring. Use 'redchain keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve api key from keyring: %w", err)
	}
	fmt.Printf("API key stored: %s\n", maskKey(key))
	return nil
}

// KeyringClearCmd removes the coach API key from the OS keyring
type KeyringClearCmd struct{}

func (cmd *KeyringClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no api key found in keyring")
		}
		return fmt.Errorf("failed to delete api key from keyring: %w", err)
	}
	fmt.Println("✓ API key deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetAPIKey()
	if err == nil {
		fmt.Println("✓ API key is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("ℹ No api key stored in keyring")
	}
	return nil
}

// maskKey keeps the first and last 4 characters of a key visible.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
