package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vidstream/account-system/internal/client/api"
	"github.com/vidstream/account-system/internal/client/cli"
	"github.com/vidstream/account-system/internal/client/guard"
	"github.com/vidstream/account-system/internal/client/session"
)

const defaultServerURL = "http://localhost:4000"

func main() {
	serverURL := os.Getenv("VIDSTREAM_API")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	storePath, err := session.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidstreamctl: %v\n", err)
		os.Exit(1)
	}
	store, err := session.Open(storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidstreamctl: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(api.NewClient(serverURL), store, os.Stdout)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		if !errors.Is(err, guard.ErrLoginRequired) {
			fmt.Fprintf(os.Stderr, "vidstreamctl: %v\n", err)
		}
		os.Exit(1)
	}
}
