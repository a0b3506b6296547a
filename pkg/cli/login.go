package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/devpulse/hackhub/pkg/session"
)

func newLoginCommand() *Command {
	cmd := &Command{
		Name:        "login",
		Description: "Authenticate and store the session token",
		Flags:       flag.NewFlagSet("login", flag.ExitOnError),
		Run:         runLogin,
	}

	cmd.Flags.String("email", "", "Account email")
	cmd.Flags.String("password", "", "Account password")
	cmd.Flags.String("otp", "", "One-time passcode (requests one first when empty)")
	cmd.Flags.Bool("admin", false, "Log in through the admin route")

	return cmd
}

func runLogin(args []string) error {
	cmd := newLoginCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	email := cmd.Flags.Lookup("email").Value.String()
	password := cmd.Flags.Lookup("password").Value.String()
	otp := cmd.Flags.Lookup("otp").Value.String()
	admin := cmd.Flags.Lookup("admin").Value.String() == "true"

	if email == "" {
		return fmt.Errorf("email is required")
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch {
	case admin:
		if password == "" {
			return fmt.Errorf("password is required for admin login")
		}
		resp, err := a.client.AdminLogin(ctx, email, password)
		if err != nil {
			return fmt.Errorf("admin login failed: %w", err)
		}
		session.SetToken(ctx, a.store, resp.Token)
		if err := session.SaveAdminUser(ctx, a.store, resp.User); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)

	case otp != "":
		resp, err := a.client.VerifyOTP(ctx, email, otp)
		if err != nil {
			return fmt.Errorf("passcode verification failed: %w", err)
		}
		session.SetToken(ctx, a.store, resp.Token)
		if err := session.SaveUser(ctx, a.store, session.User{
			Email: resp.User.Email,
			User:  resp.User,
			Team:  resp.Team,
		}); err != nil {
			return err
		}
		if resp.Team != nil && resp.Team.Leader != nil {
			snap := session.TeamSnapshot{
				TeamID:  resp.Team.ID,
				Leader:  *resp.Team.Leader,
				Members: resp.Team.Members,
				Theme:   resp.Team.Theme,
			}
			if err := a.teams.Reconcile(ctx, snap); err != nil {
				a.logger.WithError(err).Warn("failed to cache team snapshot from login")
			}
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)

	case password != "":
		resp, err := a.client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		session.SetToken(ctx, a.store, resp.Token)
		if err := session.SaveUser(ctx, a.store, session.User{
			Email: resp.User.Email,
			User:  resp.User,
			Team:  resp.Team,
		}); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)

	default:
		if err := a.client.SendOTP(ctx, email); err != nil {
			return fmt.Errorf("failed to request passcode: %w", err)
		}
		fmt.Printf("Passcode sent to %s; rerun with -otp <code>\n", email)
	}
	return nil
}

func newLogoutCommand() *Command {
	cmd := &Command{
		Name:        "logout",
		Description: "Invalidate the session and clear local state",
		Flags:       flag.NewFlagSet("logout", flag.ExitOnError),
		Run:         runLogout,
	}
	return cmd
}

func runLogout(args []string) error {
	cmd := newLogoutCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.client.Logout(ctx); err != nil {
		// Clear locally regardless; the token may already be invalid.
		a.logger.WithError(err).Warn("server-side logout failed")
	}
	session.ClearAuth(ctx, a.store)
	a.display.Purge()
	fmt.Println("Logged out")
	return nil
}
