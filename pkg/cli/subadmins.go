package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/devpulse/hackhub/pkg/api"
)

func newSubAdminsCommand() *Command {
	cmd := &Command{
		Name:        "subadmins",
		Description: "Manage sub-admin accounts and their capabilities",
		Flags:       flag.NewFlagSet("subadmins", flag.ExitOnError),
		Run:         runSubAdmins,
	}

	cmd.Flags.String("action", "list", "Action: list, create, delete, permissions, grant")
	cmd.Flags.String("id", "", "Sub-admin ID (delete)")
	cmd.Flags.String("email", "", "Sub-admin email (create, permissions, grant)")
	cmd.Flags.String("name", "", "Sub-admin full name (create)")
	cmd.Flags.String("capabilities", "", "Comma-separated capability tokens (create, grant)")

	return cmd
}

func runSubAdmins(args []string) error {
	cmd := newSubAdminsCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	email := cmd.Flags.Lookup("email").Value.String()
	name := cmd.Flags.Lookup("name").Value.String()
	capabilities := cmd.Flags.Lookup("capabilities").Value.String()

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch action {
	case "list":
		subAdmins, err := a.client.ListSubAdmins(ctx)
		if err != nil {
			return err
		}
		for _, subAdmin := range subAdmins {
			fmt.Printf("%-36s %-30s %s\n", subAdmin.ID, subAdmin.Email, strings.Join(subAdmin.Permissions, ","))
		}
		return nil
	case "create":
		if email == "" {
			return fmt.Errorf("email is required")
		}
		created, err := a.client.CreateSubAdmin(ctx, api.SubAdmin{
			Email:       email,
			FullName:    name,
			Permissions: splitCapabilities(capabilities),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created sub-admin %s (%s)\n", created.Email, created.ID)
		return nil
	case "delete":
		if id == "" {
			return fmt.Errorf("sub-admin id is required")
		}
		if err := a.client.DeleteSubAdmin(ctx, id); err != nil {
			return err
		}
		fmt.Println("Sub-admin removed")
		return nil
	case "permissions":
		if email == "" {
			return fmt.Errorf("email is required")
		}
		granted, err := a.client.GetPermissions(ctx, email)
		if err != nil {
			return err
		}
		if len(granted) == 0 {
			fmt.Println("No capabilities granted")
			return nil
		}
		for _, capability := range granted {
			fmt.Println(capability)
		}
		return nil
	case "grant":
		if email == "" {
			return fmt.Errorf("email is required")
		}
		if err := a.client.SetPermissions(ctx, email, splitCapabilities(capabilities)); err != nil {
			return err
		}
		fmt.Println("Capabilities updated")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func splitCapabilities(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
