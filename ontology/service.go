// Package ontology is the service facade over the loaded graphs: it owns the
// three core operations (form schema derivation, verb resolution, validation
// orchestration) plus the status/stats summaries.
//
// A Service is constructed once at startup around immutable graphs and shared
// by reference across all concurrent request handlers; every operation
// computes its result fresh from the graphs, so there is no cache and no
// invalidation concern.
package ontology

import (
	"log/slog"

	"github.com/c360studio/ontoserve/forms"
	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/shacl"
	"github.com/c360studio/ontoserve/verbs"
	"github.com/c360studio/ontoserve/vocabulary"
	"github.com/c360studio/ontoserve/vocabulary/onto"
)

// Options configures a Service.
type Options struct {
	// BaseIRI is the ontology namespace verbs resolve against. Empty
	// means onto.DefaultBase.
	BaseIRI string

	// SeparateOntologyForInference passes the ontology graph to the
	// validation engine as a distinct schema graph. When false the shape
	// graph doubles as the schema graph. Both deployments are valid.
	SeparateOntologyForInference bool

	// Logger receives operational logs. Nil means slog.Default().
	Logger *slog.Logger
}

// Service exposes the core operations over immutable ontology and shape
// graphs.
type Service struct {
	ont      *graphstore.Graph
	shapes   *graphstore.Graph
	resolver *verbs.Resolver
	opts     Options
	logger   *slog.Logger
}

// NewService creates a service over the given graphs. shapes may be nil,
// meaning ontology and shape facts are deployed as one merged graph.
func NewService(ont, shapes *graphstore.Graph, opts Options) *Service {
	if ont == nil {
		ont = graphstore.New(nil)
	}
	if shapes == nil {
		shapes = ont
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ont:      ont,
		shapes:   shapes,
		resolver: verbs.NewResolver(ont, opts.BaseIRI),
		opts:     opts,
		logger:   logger,
	}
}

// Forms derives the form schema from the shape graph.
func (s *Service) Forms() forms.Schema {
	return forms.Compile(s.shapes)
}

// Lookup resolves a raw verb string against the ontology graph.
func (s *Service) Lookup(verb string) verbs.Result {
	return s.resolver.Lookup(verb)
}

// ValidationResult is the normalized outcome of a validation call. Exactly
// one of ReportText or Detail is populated: ReportText carries the engine's
// diagnostic report, Detail carries a parse-error message. The two must stay
// distinguishable so clients can tell bad input from invalid-per-shapes.
type ValidationResult struct {
	Conforms   bool   `json:"conforms"`
	ReportText string `json:"report_text,omitempty"`
	Detail     string `json:"detail,omitempty"`

	report *shacl.Report
}

// ParseFailed reports whether the input never reached the validation engine.
func (v ValidationResult) ParseFailed() bool {
	return v.Detail != ""
}

// Report returns the underlying engine report, or nil after a parse failure.
func (v ValidationResult) Report() *shacl.Report {
	return v.report
}

// Validate parses untrusted Turtle data into a transient graph and delegates
// to the validation engine. The transient graph is local to the call; no
// coordination is needed between concurrent validations.
//
// Parse failures are recovered locally and reported as a conformance-style
// failure carrying the parser message in Detail, never as a process fault.
func (s *Service) Validate(turtleData string) ValidationResult {
	data, err := graphstore.DecodeString(turtleData)
	if err != nil {
		s.logger.Debug("validation input failed to parse", slog.String("error", err.Error()))
		return ValidationResult{Conforms: false, Detail: err.Error()}
	}

	opts := shacl.Options{
		Inference:    shacl.InferenceRDFS,
		AbortOnFirst: false,
		MetaSHACL:    false,
	}
	if s.opts.SeparateOntologyForInference {
		opts.OntGraph = s.ont
	}

	report, err := shacl.Validate(data, s.shapes, opts)
	if err != nil {
		// Only configuration-level errors reach here; none are possible
		// with the fixed options above, but surface a clean message if
		// the engine ever grows one.
		s.logger.Error("validation engine rejected configuration", slog.String("error", err.Error()))
		return ValidationResult{Conforms: false, Detail: "validation engine unavailable"}
	}

	return ValidationResult{
		Conforms:   report.Conforms,
		ReportText: report.Text(),
		report:     report,
	}
}

// Stats summarizes the loaded graphs.
type Stats struct {
	Triples    int `json:"total_triples"`
	Shapes     int `json:"shapes"`
	Verbs      int `json:"verbs"`
	Situations int `json:"situations"`
}

// Stats counts the main entity kinds across the loaded graphs.
func (s *Service) Stats() Stats {
	base := s.opts.BaseIRI

	triples := s.ont.Len()
	if s.shapes != s.ont {
		triples += s.shapes.Len()
	}

	return Stats{
		Triples:    triples,
		Shapes:     len(s.shapes.SubjectsByType(vocabulary.ShNodeShape)),
		Verbs:      len(s.ont.SubjectsByType(onto.IRI(base, onto.ClassVerb))),
		Situations: len(s.ont.SubjectsByType(onto.IRI(base, onto.ClassSituation))),
	}
}

// TripleCount returns the total number of loaded triples, for the status
// endpoint.
func (s *Service) TripleCount() int {
	return s.Stats().Triples
}
