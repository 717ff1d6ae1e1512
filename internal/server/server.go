// Package server exposes the settlement evaluator over HTTP. The
// transport owns body schema checking, status-code mapping and
// logging; the evaluation itself stays in internal/settle.
package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/payflow-dev/payflow/internal/audit"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/settle"
)

// Server handles the payment-instructions API.
type Server struct {
	evaluator *settle.Evaluator
	log       zerolog.Logger
	auditDir  string // empty = audit disabled
}

// Options configures optional server behavior.
type Options struct {
	AuditDir string // when non-empty, evaluations append to the settlement log here
}

// New creates a Server around an evaluator.
func New(evaluator *settle.Evaluator, log zerolog.Logger, opts Options) *Server {
	return &Server{
		evaluator: evaluator,
		log:       log,
		auditDir:  opts.AuditDir,
	}
}

// Handler returns the routed HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payment-instructions", s.handlePaymentInstructions)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	var h http.Handler = mux
	h = requestLogger(s.log)(h)
	h = recovery(s.log)(h)
	h = requestID(h)
	return h
}

// apiResponse is the transport envelope around a settlement result.
type apiResponse struct {
	Status  model.Status           `json:"status"`
	Message string                 `json:"message"`
	Data    model.SettlementResult `json:"data"`
}

// handlePaymentInstructions runs one instruction against the supplied
// snapshot. Failed settlements map to 400, successful and pending to
// 200; schema failures never reach the evaluator.
func (s *Server) handlePaymentInstructions(w http.ResponseWriter, r *http.Request) {
	accounts, instructionText, err := decodeEvaluateRequest(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.evaluator.Evaluate(accounts, instructionText)

	s.appendAudit(r, result)

	status := http.StatusOK
	message := "Transaction executed successfully"
	if result.Status == model.StatusFailed {
		status = http.StatusBadRequest
		message = "Transaction failed"
	}

	writeJSON(w, status, apiResponse{
		Status:  result.Status,
		Message: message,
		Data:    result,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// appendAudit records the evaluation outcome when auditing is enabled.
// Audit failures are logged, never surfaced to the caller.
func (s *Server) appendAudit(r *http.Request, result model.SettlementResult) {
	if s.auditDir == "" {
		return
	}

	kind := ""
	if result.Type != nil {
		kind = *result.Type
	}
	entry := audit.Entry{
		Timestamp:  time.Now().UTC(),
		RequestID:  RequestIDFromContext(r.Context()),
		Kind:       kind,
		Status:     string(result.Status),
		StatusCode: result.StatusCode,
	}

	if err := audit.Append(s.auditDir, []audit.Entry{entry}); err != nil {
		s.log.Warn().Err(err).Msg("Failed to append settlement log")
	}
}
