package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/session"
)

func newResultsCommand() *Command {
	cmd := &Command{
		Name:        "results",
		Description: "List, edit and declare competition results",
		Flags:       flag.NewFlagSet("results", flag.ExitOnError),
		Run:         runResults,
	}

	cmd.Flags.String("action", "list", "Action: list, create, delete, bulk-delete, declare")
	cmd.Flags.String("id", "", "Result ID (delete)")
	cmd.Flags.String("ids", "", "Comma-separated result IDs (bulk-delete)")
	cmd.Flags.String("team", "", "Team ID (create)")
	cmd.Flags.String("rank", "0", "Rank (create)")
	cmd.Flags.String("score", "0", "Score (create)")
	cmd.Flags.Bool("subadmin", false, "Use the sub-admin route family")

	return cmd
}

func runResults(args []string) error {
	cmd := newResultsCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	ids := cmd.Flags.Lookup("ids").Value.String()
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
		results, err := a.client.ListResults(ctx)
		if err != nil {
			return err
		}
		for _, result := range results {
			state := "draft"
			if result.Declared {
				state = "declared"
			}
			fmt.Printf("%-36s rank=%-3d score=%-8.2f %s %s\n", result.ID, result.Rank, result.Score, state, result.TeamName)
		}
		return nil
	case "create":
		if teamID == "" {
			return fmt.Errorf("team id is required")
		}
		rank, err := strconv.Atoi(cmd.Flags.Lookup("rank").Value.String())
		if err != nil {
			return fmt.Errorf("invalid rank: %w", err)
		}
		score, err := strconv.ParseFloat(cmd.Flags.Lookup("score").Value.String(), 64)
		if err != nil {
			return fmt.Errorf("invalid score: %w", err)
		}
		created, err := a.client.CreateResult(ctx, variant, api.Result{TeamID: teamID, Rank: rank, Score: score})
		if err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyResults)
		fmt.Printf("Created draft result %s\n", created.ID)
		return nil
	case "delete":
		if id == "" {
			return fmt.Errorf("result id is required")
		}
		if err := a.client.DeleteResult(ctx, variant, id); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyResults)
		fmt.Println("Result deleted")
		return nil
	case "bulk-delete":
		if ids == "" {
			return fmt.Errorf("result ids are required")
		}
		if err := a.client.BulkDeleteResults(ctx, variant, strings.Split(ids, ",")); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyResults)
		fmt.Println("Results deleted")
		return nil
	case "declare":
		if err := a.client.DeclareResults(ctx, variant); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyResults)
		fmt.Println("Results declared")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}
