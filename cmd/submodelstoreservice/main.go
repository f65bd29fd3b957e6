package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/api"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/metrics"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence"
	"github.com/go-chi/chi/v5"
)

// newHandler assembles the HTTP surface: CORS, health, metrics and the store API.
func newHandler(cfg *common.Config, store api.Store) *chi.Mux {
	r := chi.NewRouter()
	common.AddCors(r, cfg)
	common.AddHealthEndpoint(r, cfg)
	common.AddMetricsEndpoint(r, metrics.Registry)

	ctrl := api.NewSubmodelStoreAPIController(store, cfg.Server.ContextPath, cfg.Store.MaxBlobSizeBytes)
	r.Mount("/", api.NewRouter(ctrl))
	return r
}

func newStore(cfg *common.Config, b *backends) *persistence.SubmodelStore {
	return persistence.NewSubmodelStore(b.documents, b.blobs,
		persistence.WithOperationTimeout(time.Duration(cfg.Store.OperationTimeoutSeconds)*time.Second),
		persistence.WithMaxBlobSize(cfg.Store.MaxBlobSizeBytes),
		persistence.WithWorkers(cfg.Store.Workers),
	)
}

func runServer(ctx context.Context, configPath string, databaseSchema string) error {
	log.Default().Println("Loading Submodel Store Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}

	b, err := buildBackends(ctx, cfg, databaseSchema)
	if err != nil {
		return err
	}
	defer b.Close(context.Background())

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           newHandler(cfg, newStore(cfg, b)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("▶️  Submodel Store listening on %s (contextPath=%q)\n", srv.Addr, cfg.Server.ContextPath)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := ""
	databaseSchema := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&databaseSchema, "databaseSchema", "", "Path to an additional SQL schema executed on the postgres backend")
	flag.Parse()

	if databaseSchema != "" {
		if _, err := os.Stat(databaseSchema); err != nil {
			fmt.Println("The specified database schema path is invalid or the file was not found.")
			os.Exit(1)
		}
	}

	common.PrintSplash()
	if err := runServer(ctx, configPath, databaseSchema); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
