package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	apiclient "github.com/pawmart/pawmart/internal/api/client"
	"github.com/pawmart/pawmart/internal/engine"
	"github.com/pawmart/pawmart/internal/feed"
	"github.com/pawmart/pawmart/internal/notify"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func listingsWatchCmd() *cobra.Command {
	var (
		every       time.Duration
		category    string
		metricsAddr string
		webhook     string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh listings periodically and report new ones",
		Long: "Poll the listings API on a schedule and print listings that were not\n" +
			"there on the previous refresh. Overlapping refreshes are resolved in\n" +
			"favour of the newest request. Optionally announce new listings to a\n" +
			"Discord webhook and expose Prometheus metrics.",
		Example: `  # Watch all listings every 30 seconds
  pawmart listings watch

  # Watch pets every minute, alert Discord, serve metrics
  pawmart listings watch --category Pets --every 1m \
    --discord-webhook "$DISCORD_WEBHOOK" --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scope := category
			if scope == "" || scope == domain.CategoryAll {
				scope = "all listings"
			}

			w := cmd.OutOrStdout()
			opts := []engine.EngineOption{
				engine.WithLogger(a.log),
				engine.WithScope(scope),
				engine.WithFreshHandler(func(fresh []domain.Listing) {
					printTitle(w, a.styles, fmt.Sprintf("%d new in %s", len(fresh), scope))
					if err := printListingsTable(w, fresh); err != nil {
						a.log.Warn("printing new listings", "error", err)
					}
				}),
			}
			if webhook != "" {
				opts = append(opts, engine.WithAlerter(notify.NewDiscordNotifier(webhook,
					notify.WithListingURL(a.cfg.API.BaseURL+"/listings/%s"),
				)))
			}

			fetch := func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListListings(ctx, &apiclient.ListListingsParams{Category: category})
			}
			eng := engine.NewEngine(fetch, feed.NewLoader("listings", a.notifier, a.log), opts...)

			sched, err := engine.NewScheduler(eng, every, a.log)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv := serveMetrics(metricsAddr, a)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			if _, err := eng.RunRefresh(ctx); err != nil {
				return err
			}
			a.notifier.Info(fmt.Sprintf("Watching %s every %s. Press Ctrl+C to stop.", scope, every))

			sched.Start(ctx)
			<-ctx.Done()
			<-sched.Stop().Done()
			return nil
		},
	}
	cmd.Flags().DurationVar(&every, "every", 30*time.Second, "refresh interval")
	cmd.Flags().StringVar(&category, "category", "", "only watch this category")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&webhook, "discord-webhook", os.Getenv("PAWMART_DISCORD_WEBHOOK"),
		"Discord webhook URL for new-listing alerts")

	return cmd
}

func serveMetrics(addr string, a *app) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.notifier.Error(fmt.Sprintf("Metrics server stopped: %v", err))
		}
	}()
	return srv
}
