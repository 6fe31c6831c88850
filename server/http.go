package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontoserve/export"
	"github.com/c360studio/ontoserve/ontology"
)

// maxRequestBodySize limits POST body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// RegisterHTTPHandlers registers all API handlers under the given prefix.
// The prefix should be the path segment without a trailing slash (e.g.
// "api"). Handlers are registered as:
//
//	GET  <prefix>/forms
//	GET  <prefix>/lookup
//	POST <prefix>/validate
//	GET  <prefix>/status
//	GET  <prefix>/stats
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	// Normalise: ensure leading slash and trailing slash.
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix+"forms", c.instrument("forms", c.handleForms))
	mux.HandleFunc(prefix+"lookup", c.instrument("lookup", c.handleLookup))
	mux.HandleFunc(prefix+"validate", c.instrument("validate", c.handleValidate))
	mux.HandleFunc(prefix+"status", c.instrument("status", c.handleStatus))
	mux.HandleFunc(prefix+"stats", c.instrument("stats", c.handleStats))
}

// RegisterOpsHandlers registers the operational endpoints at the mux root.
func (c *Component) RegisterOpsHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", c.handleHealthz)
	if c.metrics != nil {
		mux.Handle("/metrics", c.metrics.Handler())
	}
}

// ----------------------------------------------------------------------------
// GET /api/forms
// ----------------------------------------------------------------------------

// handleForms derives the form schema from the shape graph. The schema is
// computed fresh on every call; the graphs never change, so there is nothing
// to invalidate.
func (c *Component) handleForms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"forms": c.service.Forms()})
}

// ----------------------------------------------------------------------------
// GET /api/lookup?verb=<string>
// ----------------------------------------------------------------------------

// handleLookup resolves a verb to its situation mappings. Unknown and
// unmapped verbs are normal outcomes, not errors; only a missing query
// parameter is a client error.
func (c *Component) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	verb := r.URL.Query().Get("verb")
	if verb == "" {
		http.Error(w, "Missing verb parameter", http.StatusBadRequest)
		return
	}

	result := c.service.Lookup(verb)
	if c.metrics != nil {
		c.metrics.LookupsTotal.WithLabelValues(lookupOutcome(result.Found, len(result.Mappings))).Inc()
	}
	writeJSON(w, http.StatusOK, result)
}

func lookupOutcome(found bool, mappings int) string {
	switch {
	case !found:
		return "not_found"
	case mappings == 0:
		return "unmapped"
	default:
		return "mapped"
	}
}

// ----------------------------------------------------------------------------
// POST /api/validate
// ----------------------------------------------------------------------------

// validateRequest is the request body for the validate endpoint.
type validateRequest struct {
	TurtleData string `json:"turtle_data"`
}

// handleValidate parses the submitted Turtle into a transient graph and
// delegates to the validation engine. A body that fails to parse as Turtle
// yields a 400 with a detail message; a body that parses but violates the
// shapes yields a 200 with conforms=false and the diagnostic report.
// Pass ?format=turtle or ?format=ntriples to receive the validation report
// as an RDF document instead of JSON; unsupported format names are rejected.
func (c *Component) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req validateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.TurtleData == "" {
		http.Error(w, "turtle_data is required", http.StatusBadRequest)
		return
	}

	result := c.service.Validate(req.TurtleData)
	if c.metrics != nil {
		c.metrics.ValidationsTotal.WithLabelValues(validationOutcome(result)).Inc()
	}

	if result.ParseFailed() {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}

	if name := r.URL.Query().Get("format"); name != "" {
		format, err := export.ParseFormat(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		c.writeReport(w, result, format)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeReport serializes the validation report graph in the given export
// format.
func (c *Component) writeReport(w http.ResponseWriter, result ontology.ValidationResult, format export.Format) {
	report := result.Report()
	if report == nil {
		http.Error(w, "No report available", http.StatusInternalServerError)
		return
	}

	serializer := export.NewSerializer(format)
	doc, err := serializer.Serialize(report.Triples())
	if err != nil {
		c.logger.Error("serialize validation report", slog.String("error", err.Error()))
		http.Error(w, "Failed to serialize report", http.StatusInternalServerError)
		return
	}

	info, _ := export.GetFormatInfo(format)
	w.Header().Set("Content-Type", info.MIMEType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func validationOutcome(result ontology.ValidationResult) string {
	switch {
	case result.ParseFailed():
		return "parse_error"
	case result.Conforms:
		return "conforms"
	default:
		return "violations"
	}
}

// ----------------------------------------------------------------------------
// GET /api/status and /api/stats
// ----------------------------------------------------------------------------

func (c *Component) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"triples": c.service.TripleCount(),
	})
}

func (c *Component) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, c.service.Stats())
}

func (c *Component) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// instrument wraps a handler with request-ID logging and metrics.
func (c *Component) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)

		elapsed := time.Since(start)
		c.logger.Debug("request handled",
			slog.String("component", c.name),
			slog.String("endpoint", endpoint),
			slog.String("request_id", requestID),
			slog.Int("status", rec.status),
			slog.Duration("elapsed", elapsed),
		)
		if c.metrics != nil {
			c.metrics.ObserveRequest(endpoint, strconv.Itoa(rec.status), elapsed)
		}
	}
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already written; an encode failure here cannot be
	// reported to the client.
	_ = json.NewEncoder(w).Encode(v)
}
