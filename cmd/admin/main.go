// Command admin manages portal accounts directly against the credential
// store, without going through the HTTP API.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/guivini-ac/pbi-autenticate/internal/server/admin"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:     "admin",
	Short:   "Manage Power BI portal accounts",
	Long:    "Manage Power BI portal accounts and inspect the access log.\nOperates directly on the SQLite database used by the server.",
	Version: fmt.Sprintf("%s (build %s, commit %s)", Version, BuildDate, GitCommit),
}

var createUserCmd = &cobra.Command{
	Use:   "create-user <username> <password>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password := args[0], args[1]

		return withService(cmd, func(svc *admin.Service) error {
			id, err := svc.CreateUser(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, storage.ErrUserAlreadyExists) {
					return fmt.Errorf("username %q is already taken", username)
				}
				return err
			}
			cmd.Printf("User %q created (id %d)\n", username, id)
			return nil
		})
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <username>",
	Short: "Delete an account (access log entries are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		return withService(cmd, func(svc *admin.Service) error {
			deleted, err := svc.DeleteUser(cmd.Context(), username)
			if err != nil {
				return err
			}
			if deleted == 0 {
				return fmt.Errorf("user %q not found", username)
			}
			cmd.Printf("User %q deleted\n", username)
			return nil
		})
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "List all accounts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *admin.Service) error {
			users, err := svc.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				cmd.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tCREATED AT")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		})
	},
}

var viewLogsLimit int

var viewLogsCmd = &cobra.Command{
	Use:   "view-logs",
	Short: "Show recent access log entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(svc *admin.Service) error {
			entries, err := svc.ListAccessLogs(cmd.Context(), viewLogsLimit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No access log entries found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSER\tACTION\tIP ADDRESS\tTIMESTAMP")
			for _, e := range entries {
				// Username is empty when the account has since been deleted
				username := e.Username
				if username == "" {
					username = "(deleted)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, username, e.Action, e.IPAddress, e.Timestamp.Format(time.RFC3339))
			}
			return w.Flush()
		})
	},
}

// withService opens the store, runs fn against an admin service and
// closes the store afterwards
func withService(cmd *cobra.Command, fn func(*admin.Service) error) error {
	store, err := sqlite.New(cmd.Context(), dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	return fn(admin.NewService(store, store))
}

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	defaultDB := os.Getenv("DATABASE_PATH")
	if defaultDB == "" {
		defaultDB = "portal.db"
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to the portal SQLite database")
	viewLogsCmd.Flags().IntVar(&viewLogsLimit, "limit", 10, "maximum number of entries to show")

	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(deleteUserCmd)
	rootCmd.AddCommand(listUsersCmd)
	rootCmd.AddCommand(viewLogsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
