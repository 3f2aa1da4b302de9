package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runReport(ctx context.Context) error {
	// The report is gated: without a full session the user is sent
	// back to login instead of the report
	if !c.gate.IsAuthenticated(ctx) {
		return fmt.Errorf("not authenticated. Please run 'portal login' first")
	}

	token, err := c.gate.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}

	report, err := c.client.Report(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	c.io.Println("=== Report ===")
	c.io.Println()
	c.io.Printf("Embed URL: %s\n", report.URL)

	return nil
}
