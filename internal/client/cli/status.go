package cli

import "context"

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if !c.gate.IsAuthenticated(ctx) {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'portal login' to authenticate.")
		return nil
	}

	user := c.gate.CurrentUser()
	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("User ID: %d\n", user.ID)

	// Server reachability is informational only
	if health, err := c.client.Health(ctx); err != nil {
		c.io.Printf("\nWarning: server unreachable: %v\n", err)
	} else {
		c.io.Println()
		c.io.Printf("Server: %s\n", health.Message)
	}

	return nil
}
