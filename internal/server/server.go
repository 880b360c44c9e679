package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"RelAlgDb/internal/common"
	"RelAlgDb/internal/interpreter"
	e "RelAlgDb/internal/interpreter/eval"
	l "RelAlgDb/internal/logger"
	"RelAlgDb/internal/relation"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type execRequest struct {
	Expr string `json:"expr"`
}

// ExecResponse is the body of a successful POST /exec.
type ExecResponse struct {
	Success   bool           `json:"success"`
	RequestID string         `json:"requestId"`
	Label     string         `json:"label,omitempty"`
	Columns   []string       `json:"columns"`
	Rows      []relation.Row `json:"rows"`
	Result    string         `json:"result"`
}

type Server struct {
	eval   *e.Evaluator
	logger *l.Logger
	mux    *http.ServeMux
}

func New(eval *e.Evaluator) *Server {
	s := &Server{
		eval:   eval,
		logger: l.Get("server"),
		mux:    http.NewServeMux(),
	}

	// Health & readiness
	s.mux.HandleFunc("/health", s.health)

	// GET /relations -> names in the catalog
	s.mux.HandleFunc("/relations", s.relationsHandler)

	// POST /exec -> evaluate a single expression
	s.mux.HandleFunc("/exec", s.execHandler)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		r.Header.Set(RequestIDHeader, requestID)
	}
	w.Header().Set(RequestIDHeader, requestID)

	s.logger.Debug("[%s] %s %s", requestID, r.Method, r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

// StartServer serves the evaluator on addr until the listener fails.
func StartServer(addr string, eval *e.Evaluator) error {
	server := &http.Server{Addr: addr, Handler: New(eval)}
	l.Get("server").Info("Listening on %s", addr)
	return server.ListenAndServe()
}

// health returns 200 OK for liveness checks
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) relationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Error("Invalid method used: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, r, s.eval.Catalog().Names())
}

// execHandler evaluates one expression. With ?format=html the relation is
// returned as an HTML table instead of JSON.
func (s *Server) execHandler(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)

	if r.Method != http.MethodPost {
		s.logger.Error("[%s] Invalid method used: %s", requestID, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req execRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("[%s] Failed to decode request body: %v", requestID, err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.eval.Execute(req.Expr)
	if err != nil {
		s.logger.Error("[%s] Failed to evaluate expression: %v", requestID, err)
		status := http.StatusInternalServerError
		var perr *common.ParseError
		if errors.As(err, &perr) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(interpreter.RenderHTML(result)))
		return
	}

	rows := result.Rows
	if rows == nil {
		rows = []relation.Row{}
	}
	columns := result.Columns()
	if columns == nil {
		columns = []string{}
	}

	s.writeJSON(w, r, ExecResponse{
		Success:   true,
		RequestID: requestID,
		Label:     result.Label,
		Columns:   columns,
		Rows:      rows,
		Result:    interpreter.FormatResult(result),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("[%s] Failed to marshal response: %v", r.Header.Get(RequestIDHeader), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
