package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/client"
	"github.com/devpulse/hackhub/pkg/session"
)

func newThemesCommand() *Command {
	cmd := &Command{
		Name:        "themes",
		Description: "List and manage hackathon themes",
		Flags:       flag.NewFlagSet("themes", flag.ExitOnError),
		Run:         runThemes,
	}

	cmd.Flags.String("action", "list", "Action: list, create, activate, deactivate-all, delete, select")
	cmd.Flags.String("id", "", "Theme ID (activate, delete, select)")
	cmd.Flags.String("name", "", "Theme name (create)")
	cmd.Flags.String("description", "", "Theme description (create)")
	cmd.Flags.Bool("subadmin", false, "Use the sub-admin route family")

	return cmd
}

func runThemes(args []string) error {
	cmd := newThemesCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	name := cmd.Flags.Lookup("name").Value.String()
	description := cmd.Flags.Lookup("description").Value.String()
	variant := adminVariant(cmd)

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch action {
	case "list":
		themes, err := a.client.ListThemes(ctx)
		if err != nil {
			return err
		}
		for _, theme := range themes {
			marker := " "
			if theme.Active {
				marker = "*"
			}
			fmt.Printf("%s %-36s %s\n", marker, theme.ID, theme.Name)
		}
		return nil
	case "create":
		if name == "" {
			return fmt.Errorf("theme name is required")
		}
		created, err := a.client.CreateTheme(ctx, variant, api.Theme{Name: name, Description: description})
		if err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyThemes)
		fmt.Printf("Created theme %s (%s)\n", created.Name, created.ID)
		return nil
	case "activate":
		if id == "" {
			return fmt.Errorf("theme id is required")
		}
		if err := a.client.ActivateTheme(ctx, variant, id); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyThemes)
		fmt.Println("Theme activated")
		return nil
	case "deactivate-all":
		if err := a.client.DeactivateAllThemes(ctx, variant); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyThemes)
		fmt.Println("All themes deactivated")
		return nil
	case "delete":
		if id == "" {
			return fmt.Errorf("theme id is required")
		}
		if err := a.client.DeleteTheme(ctx, variant, id); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyThemes)
		fmt.Println("Theme deleted")
		return nil
	case "select":
		if id == "" {
			return fmt.Errorf("theme id is required")
		}
		if err := a.client.SelectTheme(ctx, id); err != nil {
			return err
		}
		fmt.Println("Theme selected")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

// adminVariant picks the route family from the -subadmin flag.
func adminVariant(cmd *Command) client.Variant {
	if lookup := cmd.Flags.Lookup("subadmin"); lookup != nil && lookup.Value.String() == "true" {
		return client.VariantSubAdmin
	}
	return client.VariantAdmin
}
