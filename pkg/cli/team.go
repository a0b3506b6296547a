package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/session"
	"github.com/devpulse/hackhub/pkg/team"
)

func newTeamCommand() *Command {
	cmd := &Command{
		Name:        "team",
		Description: "Show and manage the caller's team",
		Flags:       flag.NewFlagSet("team", flag.ExitOnError),
		Run:         runTeam,
	}

	cmd.Flags.String("action", "show", "Action: show, add-member, remove-member, refresh")
	cmd.Flags.String("name", "", "Member full name (add-member)")
	cmd.Flags.String("email", "", "Member email (add-member)")
	cmd.Flags.String("id", "", "Member ID (remove-member)")
	cmd.Flags.Bool("placeholder", false, "Render a tagged placeholder leader when resolution fails")

	return cmd
}

func runTeam(args []string) error {
	cmd := newTeamCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	name := cmd.Flags.Lookup("name").Value.String()
	email := cmd.Flags.Lookup("email").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	placeholder := cmd.Flags.Lookup("placeholder").Value.String() == "true"

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch action {
	case "show":
		resolver := team.NewResolver(a.store, a.teams, a.client, a.logger, a.metrics)
		res := resolver.Resolve(ctx, nil)
		switch res.State {
		case team.Loaded:
			printTeam(res.Leader, res.Members, res.Source)
		case team.Empty:
			if placeholder {
				leader, members := res.OrPlaceholder()
				printTeam(leader, members, "placeholder")
				return nil
			}
			fmt.Println("No team data available")
		case team.Errored:
			if placeholder {
				leader, members := res.OrPlaceholder()
				printTeam(leader, members, "placeholder")
				return nil
			}
			return fmt.Errorf("team resolution failed: %w", res.Err)
		}
		return nil
	case "add-member":
		if name == "" || email == "" {
			return fmt.Errorf("member name and email are required")
		}
		member, err := a.client.AddTeamMember(ctx, api.TeamMember{FullName: name, Email: email})
		if err != nil {
			return err
		}
		fmt.Printf("Added member %s (%s)\n", member.FullName, member.ID)
		return nil
	case "remove-member":
		if id == "" {
			return fmt.Errorf("member id is required")
		}
		if err := a.client.RemoveTeamMember(ctx, id); err != nil {
			return err
		}
		fmt.Println("Member removed")
		return nil
	case "refresh":
		// Drop the cache so the next resolution goes through the API. The
		// legacy keys have to go too or the session path would still hit.
		if user, ok := loadIdentity(ctx, a); ok && user.TeamID != "" {
			a.teams.Invalidate(ctx, user.TeamID)
		}
		a.store.Delete(ctx,
			session.KeyLeaderProfile,
			session.KeyAPITeamMembers,
			session.KeyCachedTeamLeader,
			session.KeyCachedTeamMembers,
		)
		resolver := team.NewResolver(a.store, a.teams, a.client, a.logger, a.metrics)
		res := resolver.Resolve(ctx, nil)
		if res.State != team.Loaded {
			return fmt.Errorf("refresh failed")
		}
		printTeam(res.Leader, res.Members, res.Source)
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func printTeam(leader api.TeamMember, members []api.TeamMember, source string) {
	fmt.Printf("Leader: %s <%s> [%s]\n", leader.FullName, leader.Email, source)
	for _, member := range members {
		fmt.Printf("  - %s <%s>\n", member.FullName, member.Email)
	}
}
