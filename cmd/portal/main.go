package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/guivini-ac/pbi-autenticate/internal/client/api"
	"github.com/guivini-ac/pbi-autenticate/internal/client/cli"
	"github.com/guivini-ac/pbi-autenticate/internal/client/iocli"
	"github.com/guivini-ac/pbi-autenticate/internal/client/session"
	"github.com/guivini-ac/pbi-autenticate/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8000", "Server URL")
	dbPath := flag.String("db", "portal-client.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	// Restore the session before any routing decision
	gate := session.NewGate(apiClient, boltStorage)
	if err := gate.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	portalCli := cli.New(iocli.NewStdio(), gate, apiClient)
	if err := portalCli.Run(ctx, command); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Power BI Portal Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
