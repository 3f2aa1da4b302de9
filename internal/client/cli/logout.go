package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Logout never fails: the local session is cleared regardless
	c.gate.Logout(ctx)

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
