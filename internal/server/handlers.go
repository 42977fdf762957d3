package server

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/dzformation/algopascal/internal/codegen"
	"github.com/dzformation/algopascal/internal/expr"
	"github.com/dzformation/algopascal/internal/numeral"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type convertRequest struct {
	Value string `json:"value"`
}

type convertResponse struct {
	Result numeral.Result `json:"result"`
}

type detectRequest struct {
	Input string `json:"input"`
}

type detectResponse struct {
	Base      int            `json:"base"`
	BaseLabel string         `json:"base_label"`
	Result    numeral.Result `json:"result"`
}

type compileRequest struct {
	Expression string `json:"expression"`
	AlgoName   string `json:"algo_name"`
	PascalName string `json:"pascal_name"`
}

type webhookRequest struct {
	ChatID   int64  `json:"chat_id"`
	Username string `json:"username"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	value, ok := new(big.Int).SetString(req.Value, 10)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "invalid_integer", "value must be a signed decimal integer")
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Result: numeral.ConvertToBases(value)})
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	value, base, err := numeral.Detect(req.Input)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detectResponse{
		Base:      int(base),
		BaseLabel: base.String(),
		Result:    numeral.ConvertToBases(value),
	})
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snippets, err := codegen.Compile(req.Expression, req.AlgoName, req.PascalName)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snippets)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ChatID == 0 {
		writeError(w, http.StatusUnprocessableEntity, "missing_chat_id", "chat_id is required")
		return
	}

	reply, err := s.engine.Handle(r.Context(), req.ChatID, req.Username, req.Language, req.Text)
	if err != nil {
		s.logger.Error("webhook handling failed", "chat_id", req.ChatID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not process the message")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		s.logger.Error("listing users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "could not list users")
		return
	}

	type userOut struct {
		ChatID   int64  `json:"chat_id"`
		Username string `json:"username"`
		Language string `json:"language"`
	}
	out := make([]userOut, 0, len(users))
	for _, u := range users {
		out = append(out, userOut{ChatID: u.ChatID, Username: u.Username, Language: u.Language})
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(out), "users": out})
}

// errorCode maps the pipeline sentinel errors to stable API codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, numeral.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, numeral.ErrEmptyBody):
		return "empty_body"
	case errors.Is(err, numeral.ErrMalformedNumeral):
		return "malformed_numeral"
	case errors.Is(err, expr.ErrMissingEquals):
		return "missing_equals"
	case errors.Is(err, expr.ErrEmptyTarget):
		return "empty_target"
	case errors.Is(err, expr.ErrNoAssignments):
		return "no_assignments"
	default:
		return "invalid_input"
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}
