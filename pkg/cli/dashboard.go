package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devpulse/hackhub/pkg/api"
	"github.com/devpulse/hackhub/pkg/async"
	"github.com/devpulse/hackhub/pkg/config"
	"github.com/devpulse/hackhub/pkg/dashboard"
	"github.com/devpulse/hackhub/pkg/events"
	"github.com/devpulse/hackhub/pkg/permissions"
	"github.com/devpulse/hackhub/pkg/session"
)

func newDashboardCommand() *Command {
	cmd := &Command{
		Name:        "dashboard",
		Description: "Open the capability-gated admin dashboard",
		Flags:       flag.NewFlagSet("dashboard", flag.ExitOnError),
		Run:         runDashboard,
	}

	cmd.Flags.String("email", "", "Admin email (defaults to the logged-in identity)")
	cmd.Flags.String("tab", "", "Tab to activate once permissions load")
	cmd.Flags.Bool("once", false, "Resolve permissions once, print the overview and exit")
	cmd.Flags.String("watch-config", "", "Config file to watch for live reloads")

	return cmd
}

func runDashboard(args []string) error {
	cmd := newDashboardCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	email := cmd.Flags.Lookup("email").Value.String()
	tab := cmd.Flags.Lookup("tab").Value.String()
	once := cmd.Flags.Lookup("once").Value.String() == "true"
	watchPath := cmd.Flags.Lookup("watch-config").Value.String()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	identity, ok := loadIdentity(ctx, a)
	if email == "" {
		if !ok {
			return fmt.Errorf("no logged-in identity; pass -email or log in first")
		}
		email = identity.Email
	}

	tabs := dashboard.SubAdminTabs()
	if identity.Role == api.RoleAdmin || identity.Role == api.RoleSuperAdmin {
		tabs = dashboard.TabsForRole(identity.Role)
	}
	dash := dashboard.New(tabs, a.bus, a.logger)

	deniedSub := a.bus.SubscribeAuthorizationDenied(func(e events.AuthorizationDenied) {
		if e.Capability != "" {
			fmt.Printf("!! permission denied: %s requires %s\n", e.Path, e.Capability)
			return
		}
		fmt.Printf("!! permission denied: %s\n", e.Path)
	})
	defer deniedSub.Close()

	expiredSub := a.bus.SubscribeSessionExpired(func(e events.SessionExpired) {
		fmt.Println("!! session expired, log in again")
		stop()
	})
	defer expiredSub.Close()

	resolver := permissions.NewResolver(a.client, email, a.logger,
		permissions.WithInterval(a.cfg.API.PollInterval),
		permissions.WithMetrics(a.metrics))
	resolver.OnChange(func(set permissions.Set) {
		dash.UpdatePermissions(set)
		printTabs(dash)
	})

	if once {
		resolver.Refresh(ctx)
		if dash.NoPermissions() {
			fmt.Println("No permitted sections")
			return nil
		}
		if tab != "" {
			if err := dash.Activate(dashboard.TabID(tab)); err != nil {
				return err
			}
		}
		return printOverview(ctx, a, resolver.Current())
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		resolver.Run(ctx)
		return nil
	})
	if watchPath != "" {
		group.Go(func() error {
			err := config.Watch(ctx, watchPath, a.logger, func(updated *config.Config) {
				a.logger.WithField("poll_interval", updated.API.PollInterval.String()).
					Info("config reloaded, restart to apply connection changes")
			})
			if err == context.Canceled {
				return nil
			}
			return err
		})
	}
	if tab != "" {
		// Give the first fetch a beat to land before activating.
		async.SafeGo(ctx, 0, "tab activation", a.logger, func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			return dash.Activate(dashboard.TabID(tab))
		})
	}

	fmt.Printf("Dashboard open for %s (poll every %s, Ctrl-C to exit)\n", email, a.cfg.API.PollInterval)
	return group.Wait()
}

func printTabs(dash *dashboard.Dashboard) {
	visible := dash.VisibleTabs()
	if len(visible) == 0 {
		fmt.Println("-- no permitted sections --")
		return
	}
	active, _ := dash.ActiveTab()
	fmt.Print("Tabs:")
	for _, t := range visible {
		if t.ID == active {
			fmt.Printf(" [%s]", t.Title)
		} else {
			fmt.Printf(" %s", t.Title)
		}
	}
	fmt.Println()
}

// printOverview fetches the permitted feature lists in parallel and prints
// one summary line per section.
func printOverview(ctx context.Context, a *app, set permissions.Set) error {
	display := a.display

	var themes []api.Theme
	var problems []api.ProblemStatement
	var results []api.Result
	var bookings []api.Accommodation

	group, ctx := errgroup.WithContext(ctx)
	if set.Has(permissions.CapViewThemes) {
		group.Go(func() error {
			if display.Get(session.DisplayKeyThemes, &themes) {
				return nil
			}
			var err error
			if themes, err = a.client.ListThemes(ctx); err != nil {
				return err
			}
			display.Put(session.DisplayKeyThemes, themes)
			return nil
		})
	}
	if set.Has(permissions.CapViewProblemStatements) {
		group.Go(func() error {
			var err error
			if problems, err = a.client.ListProblems(ctx, ""); err != nil {
				return err
			}
			display.Put(session.DisplayKeyProblems, problems)
			return nil
		})
	}
	if set.Has(permissions.CapViewResults) {
		group.Go(func() error {
			var err error
			if results, err = a.client.ListResults(ctx); err != nil {
				return err
			}
			display.Put(session.DisplayKeyResults, results)
			return nil
		})
	}
	if set.Has(permissions.CapViewAccommodations) {
		group.Go(func() error {
			var err error
			if bookings, err = a.client.ListBookings(ctx); err != nil {
				return err
			}
			display.Put(session.DisplayKeyAccommodations, bookings)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if set.Has(permissions.CapViewThemes) {
		fmt.Printf("Themes: %d\n", len(themes))
	}
	if set.Has(permissions.CapViewProblemStatements) {
		fmt.Printf("Problem statements: %d\n", len(problems))
	}
	if set.Has(permissions.CapViewResults) {
		fmt.Printf("Results: %d\n", len(results))
	}
	if set.Has(permissions.CapViewAccommodations) {
		fmt.Printf("Accommodation bookings: %d\n", len(bookings))
	}
	return nil
}
