package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// mockIO feeds scripted input and captures everything printed
type mockIO struct {
	inputs    []string
	passwords []string
	out       strings.Builder
}

func (m *mockIO) Println(a ...any) {
	m.out.WriteString(fmt.Sprintln(a...))
}

func (m *mockIO) Printf(format string, a ...any) {
	m.out.WriteString(fmt.Sprintf(format, a...))
}

func (m *mockIO) ReadInput(prompt string) (string, error) {
	if len(m.inputs) == 0 {
		return "", errors.New("no scripted input")
	}
	input := m.inputs[0]
	m.inputs = m.inputs[1:]
	return input, nil
}

func (m *mockIO) ReadPassword(prompt string) (string, error) {
	if len(m.passwords) == 0 {
		return "", errors.New("no scripted password")
	}
	password := m.passwords[0]
	m.passwords = m.passwords[1:]
	return password, nil
}

type mockGate struct {
	authenticated bool
	user          api.UserSummary
	token         string
	loginMsg      string
	loginErr      error

	loginUsername string
	loginPassword string
	logoutCalled  bool
}

func (m *mockGate) Init(ctx context.Context) error { return nil }

func (m *mockGate) Login(ctx context.Context, username, password string) (string, error) {
	m.loginUsername = username
	m.loginPassword = password
	if m.loginErr != nil {
		return "", m.loginErr
	}
	m.authenticated = true
	return m.loginMsg, nil
}

func (m *mockGate) Logout(ctx context.Context) {
	m.logoutCalled = true
	m.authenticated = false
}

func (m *mockGate) IsAuthenticated(ctx context.Context) bool { return m.authenticated }

func (m *mockGate) CurrentUser() api.UserSummary { return m.user }

func (m *mockGate) Token(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", errors.New("no token")
	}
	return m.token, nil
}

type mockPortalClient struct {
	healthErr   error
	reportURL   string
	reportErr   error
	reportToken string
}

func (m *mockPortalClient) Health(ctx context.Context) (*api.HealthResponse, error) {
	if m.healthErr != nil {
		return nil, m.healthErr
	}
	return &api.HealthResponse{Message: "API is up and running"}, nil
}

func (m *mockPortalClient) Report(ctx context.Context, token string) (*api.ReportResponse, error) {
	m.reportToken = token
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return &api.ReportResponse{URL: m.reportURL}, nil
}

func TestCli_Login_Success(t *testing.T) {
	io := &mockIO{inputs: []string{"admin"}, passwords: []string{"senha123"}}
	gate := &mockGate{loginMsg: "login successful", user: api.UserSummary{ID: 1, Username: "admin"}}
	cli := New(io, gate, &mockPortalClient{})

	err := cli.Run(context.Background(), "login")
	require.NoError(t, err)

	assert.Equal(t, "admin", gate.loginUsername)
	assert.Equal(t, "senha123", gate.loginPassword)
	assert.Contains(t, io.out.String(), "login successful")
	assert.Contains(t, io.out.String(), "Username: admin")
}

func TestCli_Login_InvalidCredentials(t *testing.T) {
	io := &mockIO{inputs: []string{"admin"}, passwords: []string{"wrongpass"}}
	gate := &mockGate{loginErr: errors.New("invalid credentials")}
	cli := New(io, gate, &mockPortalClient{})

	err := cli.Run(context.Background(), "login")
	require.Error(t, err)
	// The server message is surfaced without rewording
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestCli_Logout(t *testing.T) {
	io := &mockIO{}
	gate := &mockGate{authenticated: true}
	cli := New(io, gate, &mockPortalClient{})

	err := cli.Run(context.Background(), "logout")
	require.NoError(t, err)
	assert.True(t, gate.logoutCalled)
	assert.Contains(t, io.out.String(), "Logout successful")
}

func TestCli_Status(t *testing.T) {
	tests := []struct {
		name string
		gate *mockGate
		want []string
	}{
		{
			name: "not authenticated",
			gate: &mockGate{},
			want: []string{"Not authenticated", "portal login"},
		},
		{
			name: "authenticated",
			gate: &mockGate{authenticated: true, user: api.UserSummary{ID: 1, Username: "admin"}},
			want: []string{"Status: Authenticated", "Username: admin", "User ID: 1", "API is up and running"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io := &mockIO{}
			cli := New(io, tt.gate, &mockPortalClient{})

			err := cli.Run(context.Background(), "status")
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, io.out.String(), want)
			}
		})
	}
}

func TestCli_Status_ServerUnreachable(t *testing.T) {
	io := &mockIO{}
	gate := &mockGate{authenticated: true, user: api.UserSummary{ID: 1, Username: "admin"}}
	cli := New(io, gate, &mockPortalClient{healthErr: errors.New("connection refused")})

	// Server being down does not fail the status command
	err := cli.Run(context.Background(), "status")
	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "server unreachable")
}

func TestCli_Report_RequiresLogin(t *testing.T) {
	io := &mockIO{}
	client := &mockPortalClient{reportURL: "https://app.powerbi.com/view?r=test"}
	cli := New(io, &mockGate{}, client)

	err := cli.Run(context.Background(), "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	// No request is made without a session
	assert.Empty(t, client.reportToken)
}

func TestCli_Report_Success(t *testing.T) {
	io := &mockIO{}
	gate := &mockGate{authenticated: true, token: "jwt-token"}
	client := &mockPortalClient{reportURL: "https://app.powerbi.com/view?r=test"}
	cli := New(io, gate, client)

	err := cli.Run(context.Background(), "report")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", client.reportToken)
	assert.Contains(t, io.out.String(), "https://app.powerbi.com/view?r=test")
}

func TestCli_UnknownCommand(t *testing.T) {
	cli := New(&mockIO{}, &mockGate{}, &mockPortalClient{})

	err := cli.Run(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: bogus")
}
