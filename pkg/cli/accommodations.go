package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/session"
)

func newAccommodationsCommand() *Command {
	cmd := &Command{
		Name:        "accommodations",
		Description: "List and manage accommodation bookings",
		Flags:       flag.NewFlagSet("accommodations", flag.ExitOnError),
		Run:         runAccommodations,
	}

	cmd.Flags.String("action", "list", "Action: list, book, cancel")
	cmd.Flags.String("id", "", "Booking ID (cancel)")
	cmd.Flags.String("members", "", "Comma-separated member IDs (book)")
	cmd.Flags.String("check-in", "", "Check-in date, YYYY-MM-DD (book)")
	cmd.Flags.String("check-out", "", "Check-out date, YYYY-MM-DD (book)")

	return cmd
}

func runAccommodations(args []string) error {
	cmd := newAccommodationsCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	action := cmd.Flags.Lookup("action").Value.String()
	id := cmd.Flags.Lookup("id").Value.String()
	members := cmd.Flags.Lookup("members").Value.String()

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	switch action {
	case "list":
		bookings, err := a.client.ListBookings(ctx)
		if err != nil {
			return err
		}
		for _, booking := range bookings {
			fmt.Printf("%-36s %s -> %s %s (%d members)\n",
				booking.ID,
				booking.CheckIn.Format("2006-01-02"),
				booking.CheckOut.Format("2006-01-02"),
				booking.Status,
				len(booking.MemberIDs))
		}
		return nil
	case "book":
		if members == "" {
			return fmt.Errorf("member ids are required")
		}
		checkIn, err := time.Parse("2006-01-02", cmd.Flags.Lookup("check-in").Value.String())
		if err != nil {
			return fmt.Errorf("invalid check-in date: %w", err)
		}
		checkOut, err := time.Parse("2006-01-02", cmd.Flags.Lookup("check-out").Value.String())
		if err != nil {
			return fmt.Errorf("invalid check-out date: %w", err)
		}
		booking, err := a.client.CreateBooking(ctx, api.Accommodation{
			MemberIDs: strings.Split(members, ","),
			CheckIn:   checkIn,
			CheckOut:  checkOut,
		})
		if err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyAccommodations)
		fmt.Printf("Booked accommodation %s\n", booking.ID)
		return nil
	case "cancel":
		if id == "" {
			return fmt.Errorf("booking id is required")
		}
		if err := a.client.CancelBooking(ctx, id); err != nil {
			return err
		}
		a.display.Invalidate(session.DisplayKeyAccommodations)
		fmt.Println("Booking cancelled")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}
