package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/session"
)

func newProblemsCommand() *Command {
	cmd := &Command{
		Name:        "problems",
		Description: "List and manage problem statements",
		Flags:       flag.NewFlagSet("problems", flag.ExitOnError),
		Run:         runProblems,
	}

	cmd.Flags.String("action", "list", "Action: list, create, delete, select")
	cmd.Flags.String("id", "", "Problem statement ID (delete, select)")
	cmd.Flags.String("theme", "", "Theme ID (list filter, create)")
	cmd.Flags.String("title", "", "Problem title (create)")
	cmd.Flags.String("description", "", "Problem description (create)")
	cmd.Flags.String("team", "", "Team ID (select)")
	cmd.Flags.Bool("subadmin", false, "Use the sub-admin route family")

	return cmd
}

func runProblems(args []string) error {
	cmd := newProblemsCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	themeID := cmd.Flags.Lookup("theme").Value.String()
	title := cmd.Flags.Lookup("title").Value.String()
	description := cmd.Flags.Lookup("description").Value.String()
	teamID := cmd.Flags.Lookup("team").Value.String()
	variant := adminVariant(cmd)

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch action {
	case "list":
		problems, err := a.client.ListProblems(ctx, themeID)
		if err != nil {
			return err
		}
		for _, problem := range problems {
			fmt.Printf("%-36s %s\n", problem.ID, problem.Title)
		}
		return nil
	case "create":
		if title == "" {
			return fmt.Errorf("problem title is required")
		}
		created, err := a.client.CreateProblem(ctx, variant, api.ProblemStatement{
			ThemeID:     themeID,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyProblems)
		fmt.Printf("Created problem statement %s (%s)\n", created.Title, created.ID)
		return nil
	case "delete":
		if id == "" {
			return fmt.Errorf("problem id is required")
		}
		if err := a.client.DeleteProblem(ctx, variant, id); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyProblems)
		fmt.Println("Problem statement deleted")
		return nil
	case "select":
		if id == "" || teamID == "" {
			return fmt.Errorf("problem id and team id are required")
		}
		if err := a.client.SelectProblem(ctx, id, teamID); err != nil {
			return err
		}
		fmt.Println("Problem statement selected")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}
