package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// runSessionSet сохраняет токен сервера для пользователя userID
func (c *Cli) runSessionSet(ctx context.Context, userID int64, expiresAt int64) error {
	c.io.Println("=== Session ===")
	c.io.Println()

	if userID <= 0 {
		input, err := c.io.ReadInput("User id: ")
		if err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
		userID, err = strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err != nil || userID <= 0 {
			return fmt.Errorf("invalid user id %q", input)
		}
	}

	token, err := c.io.ReadPassword("Token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := c.session.Login(ctx, userID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("✓ Session saved")
	c.io.Printf("User id: %d\n", userID)
	return nil
}

func (c *Cli) runSessionStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	status, err := c.session.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if status.UserID == 0 {
		c.io.Println("Status: Not logged in")
		c.io.Println()
		c.io.Println("Run 'tasksync session set' to store a token.")
		return nil
	}

	if status.LoggedIn {
		c.io.Println("Status: Logged in")
	} else {
		c.io.Println("Status: Session unusable (expired or wrong passphrase)")
	}
	c.io.Printf("User id: %d\n", status.UserID)
	c.io.Printf("Token: %s\n", status.Fingerprint)

	if status.ExpiresAt.IsZero() {
		c.io.Println("Token expires: never")
	} else {
		c.io.Printf("Token expires: %s\n", status.ExpiresAt.Format(time.RFC3339))
		if remaining := time.Until(status.ExpiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Run 'tasksync session set' again.")
		}
	}
	return nil
}

func (c *Cli) runSessionClear(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	c.io.Println("✓ Session cleared")
	return nil
}
