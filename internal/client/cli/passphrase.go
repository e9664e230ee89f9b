package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/tasksync/internal/client/iocli"
	"github.com/iudanet/tasksync/internal/config"
)

// ReadPassphrase returns the passphrase that unlocks the stored token.
// Sources by priority:
// 1. session.passphrase (TASKSYNC_SESSION_PASSPHRASE)
// 2. session.passphrase_file
// 3. Interactive prompt
func ReadPassphrase(io iocli.IO, cfg config.SessionConfig) (string, error) {
	if cfg.Passphrase != "" {
		return cfg.Passphrase, nil
	}

	if cfg.PassphraseFile != "" {
		content, err := os.ReadFile(cfg.PassphraseFile)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase file: %w", err)
		}
		// Убираем trailing newline/whitespace
		passphrase := strings.TrimSpace(string(content))
		if passphrase == "" {
			return "", fmt.Errorf("passphrase file is empty")
		}
		return passphrase, nil
	}

	passphrase, err := io.ReadPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if passphrase == "" {
		return "", fmt.Errorf("passphrase cannot be empty")
	}
	return passphrase, nil
}
