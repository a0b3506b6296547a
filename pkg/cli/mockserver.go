package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/devpulse/hackhub/pkg/apitest"
)

func newMockServerCommand() *Command {
	cmd := &Command{
		Name:        "mock-server",
		Description: "Run an in-memory fake of the hackathon API",
		Flags:       flag.NewFlagSet("mock-server", flag.ExitOnError),
		Run:         runMockServer,
	}

	cmd.Flags.String("addr", ":8080", "Listen address")
	cmd.Flags.Bool("seed", true, "Load the demo fixture set")

	return cmd
}

func runMockServer(args []string) error {
	cmd := newMockServerCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	addr := cmd.Flags.Lookup("addr").Value.String()
	seed := cmd.Flags.Lookup("seed").Value.String() == "true"

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	fake := apitest.NewServer(logger)
	if seed {
		fake.SeedDemo()
		fmt.Println("Seeded demo fixtures:")
		fmt.Println("  admin-token   admin@hackhub.dev   (Admin)")
		fmt.Println("  sub-token     themes@hackhub.dev  (viewThemes, createTheme, editTheme)")
		fmt.Println("  leader-token  lead@hackhub.dev    (team leader)")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	router.PathPrefix("/").Handler(fake)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("mock API listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
