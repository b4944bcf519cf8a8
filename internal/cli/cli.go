// Package cli wires the terminal frontend: a command router that gates
// protected commands behind the session, mirroring how the web app guards
// routes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"text/tabwriter"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/session"
	"github.com/grocey/grocey-cli/internal/store"
)

// ErrAuthRequired is returned when a protected command runs without a token.
var ErrAuthRequired = errors.New("not signed in: run 'grocey login' first")

// App holds the wired dependencies for every command.
type App struct {
	api      *api.API
	session  *session.Store
	settings *store.SettingsStore
	creds    *store.CredentialStore
	log      *slog.Logger
	out      io.Writer
}

func New(a *api.API, sess *session.Store, settings *store.SettingsStore, creds *store.CredentialStore, log *slog.Logger, out io.Writer) *App {
	return &App{
		api:      a,
		session:  sess,
		settings: settings,
		creds:    creds,
		log:      log,
		out:      out,
	}
}

type command struct {
	summary string
	// protected commands need a token; publicOnly commands (login, register)
	// short-circuit when one is already present.
	protected  bool
	publicOnly bool
	run        func(ctx context.Context, args []string) error
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":             {summary: "Sign in and store the session token", publicOnly: true, run: a.runLogin},
		"register":          {summary: "Create an account", publicOnly: true, run: a.runRegister},
		"verify":            {summary: "Verify a new account with the emailed code", run: a.runVerify},
		"forgot-password":   {summary: "Request a password reset email", run: a.runForgotPassword},
		"reset-password":    {summary: "Set a new password with a reset token", run: a.runResetPassword},
		"send-verification": {summary: "Re-send the account verification email", run: a.runSendVerification},
		"logout":            {summary: "Sign out and clear the stored token", protected: true, run: a.runLogout},
		"whoami":            {summary: "Show the signed-in user", protected: true, run: a.runWhoami},
		"profile":           {summary: "Show or update the profile (show|update|delete)", protected: true, run: a.runProfile},
		"change-password":   {summary: "Change the account password", protected: true, run: a.runChangePassword},
		"lists":             {summary: "Manage shopping lists (ls|add|show|update|rm|share|unshare|purchase)", protected: true, run: a.runLists},
		"items":             {summary: "Manage list items (ls|add|update|check|uncheck|qty|rm)", protected: true, run: a.runItems},
		"products":          {summary: "Manage the product catalog (ls|add|update|rm)", protected: true, run: a.runProducts},
		"categories":        {summary: "Manage product categories (ls|add|update|rm)", protected: true, run: a.runCategories},
		"pantries":          {summary: "Manage pantries (ls|add|show|update|rm|share|unshare)", protected: true, run: a.runPantries},
		"pantry-items":      {summary: "Manage pantry inventory (ls|add|update|qty|rm)", protected: true, run: a.runPantryItems},
		"config":            {summary: "Show or change local settings (ls|set|unset)", run: a.runConfig},
	}
}

// Run dispatches one invocation. The session is restored lazily on the first
// dispatch, so purely local commands still work with the API unreachable.
func (a *App) Run(ctx context.Context, args []string) error {
	cmds := a.commands()

	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage(cmds)
		return nil
	}

	name := args[0]
	cmd, ok := cmds[name]
	if !ok {
		return fmt.Errorf("unknown command %q, run 'grocey help'", name)
	}

	if err := a.session.Init(ctx); err != nil {
		return err
	}

	if cmd.protected && !a.session.Authenticated() {
		return ErrAuthRequired
	}
	if cmd.publicOnly && a.session.Authenticated() {
		email := ""
		if p := a.session.Profile(); p != nil {
			email = " as " + p.Email
		}
		fmt.Fprintf(a.out, "Already signed in%s. Run 'grocey logout' to switch accounts.\n", email)
		return nil
	}

	err := cmd.run(ctx, args[1:])
	if cmd.protected && api.IsUnauthorized(err) {
		return fmt.Errorf("%w (the stored token may have expired; run 'grocey login')", err)
	}
	return err
}

func (a *App) printUsage(cmds map[string]command) {
	fmt.Fprintln(a.out, "Usage: grocey <command> [flags]")
	fmt.Fprintln(a.out)

	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, cmds[name].summary)
	}
	w.Flush()
}
