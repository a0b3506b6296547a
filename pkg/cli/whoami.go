package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/devpulse/hackhub/pkg/session"
)

func newWhoamiCommand() *Command {
	cmd := &Command{
		Name:        "whoami",
		Description: "Show the authenticated identity",
		Flags:       flag.NewFlagSet("whoami", flag.ExitOnError),
		Run:         runWhoami,
	}

	cmd.Flags.Bool("remote", false, "Fetch the identity from the API instead of the session cache")

	return cmd
}

func runWhoami(args []string) error {
	cmd := newWhoamiCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}
	remote := cmd.Flags.Lookup("remote").Value.String() == "true"

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if session.Token(ctx, a.store) == "" {
		return fmt.Errorf("not logged in")
	}

	if remote {
		me, err := a.client.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> role=%s\n", me.User.FullName, me.User.Email, me.User.Role)
		if me.Team != nil {
			fmt.Printf("team: %s (%d members)\n", me.Team.Name, len(me.Team.Members))
		}
		return nil
	}

	if identity, ok := session.LoadAdminUser(ctx, a.store); ok {
		fmt.Printf("%s <%s> role=%s\n", identity.FullName, identity.Email, identity.Role)
		return nil
	}
	if user, ok := session.LoadUser(ctx, a.store); ok {
		fmt.Printf("%s <%s> role=%s\n", user.User.FullName, user.User.Email, user.User.Role)
		return nil
	}
	return fmt.Errorf("no cached identity; try -remote")
}
