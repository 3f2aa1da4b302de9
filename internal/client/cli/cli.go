package cli

import (
	"context"
	"fmt"

	"github.com/guivini-ac/pbi-autenticate/internal/client/iocli"
	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// SessionGate is the session state machine the commands route through
type SessionGate interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	CurrentUser() api.UserSummary
	Token(ctx context.Context) (string, error)
}

// PortalClient is the part of the API client the commands need
type PortalClient interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
	Report(ctx context.Context, token string) (*api.ReportResponse, error)
}

type Cli struct {
	io     iocli.IO
	gate   SessionGate
	client PortalClient
}

func New(io iocli.IO, gate SessionGate, client PortalClient) *Cli {
	return &Cli{
		io:     io,
		gate:   gate,
		client: client,
	}
}

func (c *Cli) Run(ctx context.Context, command string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "report":
		return c.runReport(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("Power BI Portal Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  portal [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8000)")
	fmt.Println("  --db PATH       Path to local session database (default: portal-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login       Login to the portal")
	fmt.Println("  logout      Logout and delete the local session")
	fmt.Println("  status      Show session status")
	fmt.Println("  report      Show the report embed URL (requires login)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  portal login")
	fmt.Println("  portal report")
	fmt.Println("  portal --server https://example.com login")
}
