// Package server exposes the ontology service over HTTP.
package server

import (
	"log/slog"

	"github.com/c360studio/ontoserve/metric"
	"github.com/c360studio/ontoserve/ontology"
)

// Component serves the ontology API endpoints. It holds only read-only
// collaborators, so one instance is shared across all request handlers.
type Component struct {
	name    string
	service *ontology.Service
	logger  *slog.Logger
	metrics *metric.Metrics
}

// NewComponent creates the HTTP component over the given service. logger and
// metrics may be nil; nil metrics disables instrumentation.
func NewComponent(service *ontology.Service, logger *slog.Logger, metrics *metric.Metrics) *Component {
	if logger == nil {
		logger = slog.Default()
	}
	return &Component{
		name:    "ontology-api",
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}
