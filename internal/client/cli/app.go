// Package cli implements the vidstreamctl command set on top of the API
// client, session store and route guard.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vidstream/account-system/internal/client/api"
	"github.com/vidstream/account-system/internal/client/guard"
	"github.com/vidstream/account-system/internal/client/session"
)

// App wires the client-side components behind a small subcommand dispatcher.
type App struct {
	client *api.Client
	store  *session.Store
	guard  *guard.Guard
	out    io.Writer
}

func NewApp(client *api.Client, store *session.Store, out io.Writer) *App {
	// Restore the session across process runs: a persisted token is
	// reattached to the client's default headers.
	if token := store.Token(); token != "" {
		client.SetAuthToken(token)
	}
	return &App{
		client: client,
		store:  store,
		guard:  guard.New(store),
		out:    out,
	}
}

// Run dispatches args (without the program name) to a subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "whoami":
		return a.runProtected(ctx, "whoami")
	case "users":
		return a.users(ctx)
	case "logout":
		return a.logout(ctx)
	case "help":
		return a.usage()
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		return a.usage()
	}
}

func (a *App) usage() error {
	fmt.Fprintln(a.out, `usage: vidstreamctl <command> [flags]

commands:
  register  -username <name> -email <email> -password <pass>
  login     -email <email> -password <pass>
  whoami    show the authenticated account (requires login)
  users     list all accounts
  logout    sign out and clear the local session`)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.client.Register(ctx, *username, *email, *password)
	if err != nil {
		return err
	}
	return a.establishSession(ctx, res)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	return a.establishSession(ctx, res)
}

// establishSession stores the authenticated user and token, then resumes the
// command a guard recorded before redirecting to login, if any.
func (a *App) establishSession(ctx context.Context, res *api.AuthResult) error {
	pending := a.store.ReturnTo()

	if err := a.store.SetAuth(res.User, res.Token); err != nil {
		return err
	}
	a.client.SetAuthToken(res.Token)
	fmt.Fprintf(a.out, "%s (signed in as %s)\n", res.Message, res.User.Username)

	if pending != "" {
		fmt.Fprintf(a.out, "resuming %s\n", pending)
		return a.runProtected(ctx, pending)
	}
	return nil
}

// runProtected routes a guarded location to its view.
func (a *App) runProtected(ctx context.Context, location string) error {
	var view guard.View
	switch location {
	case "whoami":
		view = a.whoami
	default:
		return fmt.Errorf("unknown protected view %q", location)
	}

	err := a.guard.Protect(location, view)(ctx)
	if errors.Is(err, guard.ErrLoginRequired) {
		fmt.Fprintf(a.out, "login required: run `vidstreamctl login` to continue to %s\n", location)
		return err
	}
	return err
}

func (a *App) whoami(ctx context.Context) error {
	user, err := a.client.CheckAuth(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	return nil
}

func (a *App) users(ctx context.Context) error {
	users, err := a.client.GetUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%s\t%s\n", u.Username, u.Email)
	}
	return nil
}

// logout clears the session locally regardless of whether the server
// acknowledged: tokens are stateless, so the guarantee is client-side anyway.
func (a *App) logout(ctx context.Context) error {
	if a.store.Token() != "" {
		if err := a.client.Signout(ctx); err != nil {
			fmt.Fprintf(a.out, "server signout failed (%v), clearing local session\n", err)
		}
	}

	a.client.ClearAuthToken()
	if err := a.store.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}
