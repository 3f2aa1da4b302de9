package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	// The gate returns the server's own message on both outcomes
	message, err := c.gate.Login(ctx, username, password)
	if err != nil {
		return err
	}

	user := c.gate.CurrentUser()

	c.io.Println()
	c.io.Printf("✓ %s\n", message)
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
