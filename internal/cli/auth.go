package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/grocey/grocey-cli/internal/api"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email (defaults to the last one used)")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		last, err := a.creds.LastEmail()
		if err != nil {
			return err
		}
		*email = last
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	resp, err := a.api.Users.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	if err := a.session.SetToken(resp.Token); err != nil {
		return err
	}
	if err := a.creds.SetLastEmail(*email); err != nil {
		return err
	}
	if err := a.session.FetchProfile(ctx); err != nil {
		a.log.Warn("signed in but profile fetch failed", "error", err)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", *email)
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "first name")
	surname := fs.String("surname", "", "last name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("register requires -name, -email and -password")
	}

	resp, err := a.api.Users.Register(ctx, api.RegisterRequest{
		Name:     *name,
		Surname:  *surname,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	// Some deployments require email verification before issuing a token.
	if resp.Token != "" {
		if err := a.session.SetToken(resp.Token); err != nil {
			return err
		}
		if err := a.creds.SetLastEmail(*email); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Account created, signed in as %s\n", *email)
		return nil
	}

	fmt.Fprintf(a.out, "Account created. Check %s for a verification code, then run 'grocey verify -code <code>'.\n", *email)
	return nil
}

func (a *App) runVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey verify", flag.ContinueOnError)
	fs.SetOutput(a.out)
	code := fs.String("code", "", "verification code from the email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *code == "" {
		return fmt.Errorf("verify requires -code")
	}

	if err := a.api.Users.VerifyAccount(ctx, *code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account verified. You can sign in now.")
	return nil
}

func (a *App) runForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey forgot-password", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("forgot-password requires -email")
	}

	if err := a.api.Users.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "If an account exists for %s, a reset email is on its way.\n", *email)
	return nil
}

func (a *App) runResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey reset-password", flag.ContinueOnError)
	fs.SetOutput(a.out)
	token := fs.String("token", "", "reset token from the email")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" || *password == "" {
		return fmt.Errorf("reset-password requires -token and -password")
	}

	if err := a.api.Users.ResetPassword(ctx, *token, *password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset. Sign in with the new password.")
	return nil
}

func (a *App) runSendVerification(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey send-verification", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("send-verification requires -email")
	}

	if err := a.api.Users.SendVerification(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification email sent.")
	return nil
}

func (a *App) runLogout(ctx context.Context, args []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) runChangePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grocey change-password", flag.ContinueOnError)
	fs.SetOutput(a.out)
	current := fs.String("current", "", "current password")
	next := fs.String("new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *current == "" || *next == "" {
		return fmt.Errorf("change-password requires -current and -new")
	}

	if err := a.api.Users.ChangePassword(ctx, *current, *next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
