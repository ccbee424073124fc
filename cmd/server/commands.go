package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "carboncalc/internal/adapters/http"
	"carboncalc/internal/adapters/memory"
	pg "carboncalc/internal/adapters/postgres"
	"carboncalc/internal/config"
	"carboncalc/internal/ports"
	calcsvc "carboncalc/internal/services/calculations"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carboncalc",
		Short:         "Personal carbon footprint calculator API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply the embedded database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), args[0])
		},
	})
	return root
}

func loadConfig() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return cfg, log, checkConfig(cfg, err)
}

// checkConfig decides whether a Load error matters for the selected store.
// A missing DATABASE_URL is only fatal for postgres.
func checkConfig(cfg config.Config, err error) error {
	if !errors.Is(err, config.ErrNoDatabaseURL) {
		return err
	}
	if cfg.Store == config.StorePostgres {
		return fmt.Errorf("DATABASE_URL is required for the postgres store")
	}
	return nil
}

func connect(ctx context.Context, cfg config.Config) (*pg.DB, error) {
	db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolOptions{
		MaxConns:          cfg.DBMaxConns,
		HealthCheckPeriod: cfg.DBHealthCheck,
	})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return db, nil
}

type stores struct {
	calcs   ports.CalculationRepository
	factors ports.EmissionFactorRepository
	close   func()
}

// openStores builds the repositories for cfg.Store.
func openStores(ctx context.Context, cfg config.Config, log zerolog.Logger) (stores, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := connect(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx, "up", log); err != nil {
				db.Close()
				return stores{}, fmt.Errorf("migrate: %w", err)
			}
		}
		return stores{calcs: db, factors: db, close: db.Close}, nil
	case config.StoreMemory:
		table := &memory.FactorTable{}
		if cfg.FactorsFile != "" {
			var err error
			if table, err = memory.LoadFactorFile(cfg.FactorsFile); err != nil {
				return stores{}, err
			}
		} else {
			log.Warn().Msg("FACTORS_FILE not set; every factor lookup will miss")
		}
		return stores{calcs: memory.NewCalculationStore(), factors: table, close: func() {}}, nil
	default:
		return stores{}, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func migrate(ctx context.Context, command string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store != config.StorePostgres {
		return fmt.Errorf("migrate needs STORE=%s", config.StorePostgres)
	}
	db, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Migrate(ctx, command, log)
}

func serve(ctx context.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	svc := calcsvc.New(st.calcs, st.factors, log)
	srv := httpadapter.New(svc, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info().Str("addr", cfg.ListenAddr).Str("env", cfg.Env).Str("store", cfg.Store).Msg("listening")

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
