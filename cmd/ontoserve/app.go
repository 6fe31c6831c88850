package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/c360studio/ontoserve/config"
	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/metric"
	"github.com/c360studio/ontoserve/ontology"
	"github.com/c360studio/ontoserve/server"
)

// shutdownTimeout bounds graceful HTTP shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// App wires the loaded graphs, the ontology service and the HTTP server
// together.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	service *ontology.Service
	metrics *metric.Metrics
	srv     *http.Server
}

// NewApp loads the configured graph documents and builds the service stack.
// A graph that fails to load is fatal: the process must not serve with no
// data.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ont, err := graphstore.LoadFile(cfg.Graph.OntologyPath)
	if err != nil {
		return nil, fmt.Errorf("load ontology graph: %w", err)
	}
	logger.Info("ontology graph loaded",
		slog.String("path", cfg.Graph.OntologyPath),
		slog.Int("triples", ont.Len()),
	)

	var shapes *graphstore.Graph
	if cfg.Graph.ShapesPath != "" {
		shapes, err = graphstore.LoadFile(cfg.Graph.ShapesPath)
		if err != nil {
			return nil, fmt.Errorf("load shapes graph: %w", err)
		}
		logger.Info("shapes graph loaded",
			slog.String("path", cfg.Graph.ShapesPath),
			slog.Int("triples", shapes.Len()),
		)
	} else {
		logger.Info("no shapes graph configured, using ontology graph for shapes")
	}

	metrics := metric.NewMetrics()
	metrics.GraphTriples.WithLabelValues("ontology").Set(float64(ont.Len()))
	if shapes != nil {
		metrics.GraphTriples.WithLabelValues("shapes").Set(float64(shapes.Len()))
	}

	service := ontology.NewService(ont, shapes, ontology.Options{
		BaseIRI:                      cfg.Graph.BaseIRI,
		SeparateOntologyForInference: cfg.Graph.SeparateInference(),
		Logger:                       logger,
	})

	component := server.NewComponent(service, logger, metrics)
	mux := http.NewServeMux()
	component.RegisterHTTPHandlers("api", mux)
	component.RegisterOpsHandlers(mux)

	return &App{
		cfg:     cfg,
		logger:  logger,
		service: service,
		metrics: metrics,
		srv: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      mux,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving", slog.String("addr", a.cfg.Server.Addr))
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
