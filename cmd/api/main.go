package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"coach-backend/internal/ai"
	"coach-backend/internal/analytics"
	"coach-backend/internal/clock"
	"coach-backend/internal/config"
	"coach-backend/internal/db"
	"coach-backend/internal/planner"
	"coach-backend/internal/progress"
	"coach-backend/internal/server"
	"coach-backend/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coach",
		Short:         "Personal productivity coach backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "coach.yaml", "YAML config file (optional)")
	root.PersistentFlags().String("store-driver", "", "file, sqlite or postgres")
	root.PersistentFlags().String("store-path", "", "JSON file or SQLite database path")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	serve := serveCmd()
	root.AddCommand(serve, statsCmd())
	// bare "coach" serves
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

// loadConfig merges the config file, the environment and explicit flags, in
// that order of precedence from lowest to highest.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"store-driver": &cfg.StoreDriver,
		"store-path":   &cfg.StorePath,
		"log-level":    &cfg.LogLevel,
		"addr":         &cfg.Addr,
	}
	for name, dst := range overrides {
		f := cmd.Flags().Lookup(name)
		if f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// openStore returns the document store and, for SQL backends, the database
// handle that analytics events are written to.
func openStore(cfg *config.Config) (store.Store, *sql.DB, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		database, err := db.Connect(db.SQLite, cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		slog.Info("connected to SQLite", "path", cfg.StorePath)
		return store.NewSQLStore(database), database, nil

	case config.StorePostgres:
		database, err := db.Connect(db.Postgres, cfg.ConnString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		slog.Info("connected to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)
		return store.NewSQLStore(database), database, nil

	default:
		return store.NewFileStore(cfg.StorePath), nil, nil
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, database, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			if database != nil {
				defer database.Close()
			}

			keeper, err := store.Open(ctx, s)
			if err != nil {
				return fmt.Errorf("load state: %w", err)
			}

			// a key saved through the API wins over the environment
			key := keeper.Snapshot().GroqAPIKey
			if key == "" {
				key = cfg.GroqAPIKey
			}
			client := ai.New(key, ai.Options{
				BaseURL:  cfg.GroqBaseURL,
				Model:    cfg.GroqModel,
				UserName: cfg.UserName,
			})

			var events analytics.Recorder = analytics.LogRecorder{}
			if database != nil {
				events = analytics.SQLRecorder{DB: database}
			}

			handler := server.New(server.Deps{
				Store:       keeper,
				AI:          client,
				Planner:     planner.New(client, client.Prompts, nil),
				Clock:       clock.System(),
				Events:      events,
				CORSOrigins: cfg.CORSOrigins,
			})

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				slog.Info("API server is running", "addr", cfg.Addr, "store", cfg.StoreDriver, "ai_active", client.Active())
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("addr", "", "listen address, e.g. :8000")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print today's progress from the store as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, database, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			if database != nil {
				defer database.Close()
			}

			doc, err := s.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load state: %w", err)
			}

			stats := progress.Today(doc, time.Now())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"hedef":        stats.Goal,
				"toplam":       stats.Total,
				"tamamlanan":   stats.Completed,
				"basari_orani": stats.Rate,
				"durum":        progress.Status(stats.Rate),
				"kalan":        stats.Remaining,
				"not_sayisi":   len(stats.Notes),
			})
		},
	}
}
