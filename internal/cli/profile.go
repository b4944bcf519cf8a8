package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/grocey/grocey-cli/internal/api"
)

func (a *App) runWhoami(ctx context.Context, args []string) error {
	if a.session.Profile() == nil {
		if err := a.session.FetchProfile(ctx); err != nil {
			return err
		}
	}

	p := a.session.Profile()
	if p == nil {
		return fmt.Errorf("profile unavailable: %s", a.session.Err())
	}
	fmt.Fprintf(a.out, "%s %s <%s>\n", p.FirstName, p.LastName, p.Email)
	fmt.Fprintf(a.out, "lists: %d  pantries: %d\n", p.ListsCount, p.PantriesCount)
	return nil
}

func (a *App) runProfile(ctx context.Context, args []string) error {
	action := "show"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "show":
		return a.runWhoami(ctx, args)

	case "update":
		fs := flag.NewFlagSet("grocey profile update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "new first name")
		surname := fs.String("surname", "", "new last name")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" && *surname == "" {
			return fmt.Errorf("profile update requires -name or -surname")
		}

		p, err := a.session.SaveChanges(ctx, api.ProfileUpdate{Name: *name, Surname: *surname})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Profile updated: %s %s\n", p.FirstName, p.LastName)
		return nil

	case "delete":
		fs := flag.NewFlagSet("grocey profile delete", flag.ContinueOnError)
		fs.SetOutput(a.out)
		confirm := fs.Bool("yes", false, "confirm account deletion")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if !*confirm {
			return fmt.Errorf("deleting the account is permanent; re-run with -yes to confirm")
		}

		if err := a.api.Users.DeleteProfile(ctx); err != nil {
			return err
		}
		if err := a.session.SetToken(""); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Account deleted.")
		return nil

	default:
		return fmt.Errorf("unknown profile action %q (show|update|delete)", action)
	}
}
