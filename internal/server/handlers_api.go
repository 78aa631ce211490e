package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/server/middleware"
	"github.com/jonathan/hiring-assistant/internal/session"
	"github.com/jonathan/hiring-assistant/internal/types"
)

// QuestionsRequest represents the request body for POST /api/v1/questions
type QuestionsRequest struct {
	Profile types.CandidateProfile `json:"profile"`
}

// QuestionsResponse represents the response for POST /api/v1/questions
type QuestionsResponse struct {
	Questions types.QuestionSet `json:"questions"`
	Warning   string            `json:"warning,omitempty"`
}

// AnswerRequest represents the request body for PUT /api/v1/answers/{index}
type AnswerRequest struct {
	Text string `json:"text"`
}

// EvaluationResponse represents the response for POST /api/v1/evaluation
type EvaluationResponse struct {
	Evaluation string `json:"evaluation,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

// WarningResponse is returned when an action was refused because of user input.
type WarningResponse struct {
	Warning string   `json:"warning"`
	Fields  []string `json:"fields,omitempty"`
}

// SessionResponse represents the current session state
type SessionResponse struct {
	Questions types.QuestionSet `json:"questions"`
	Answers   []string          `json:"answers"`
}

func newSessionResponse(sess *session.Session) SessionResponse {
	answers := sess.Answers()
	return SessionResponse{
		Questions: sess.Questions(),
		Answers:   answers[:],
	}
}

// handleGenerateQuestions generates questions for the posted profile
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req QuestionsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	questions, err := s.assistant.GenerateQuestions(r.Context(), sess, req.Profile)
	switch {
	case err == nil:
		s.jsonResponse(w, http.StatusOK, QuestionsResponse{Questions: questions})
	case errors.Is(err, interview.ErrNoQuestions):
		s.jsonResponse(w, http.StatusOK, QuestionsResponse{Questions: types.QuestionSet{}, Warning: err.Error()})
	default:
		s.actionError(w, err)
	}
}

// handleSetAnswer stores the answer for one question slot
func (s *Server) handleSetAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		reqErr := &ErrValidation{Field: "index", Message: "must be an integer"}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}

	var req AnswerRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := sess.SetAnswer(index, req.Text); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

// handleEvaluate evaluates the answers stored in the session
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	evaluation, err := s.assistant.EvaluateAnswers(r.Context(), sess)
	if err != nil {
		s.actionError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, EvaluationResponse{Evaluation: evaluation})
}

// handleGetSession returns the questions and answers of the current session
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(sess))
}

// handleDeleteSession disposes the current session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.disposeSession(w, r)
	w.WriteHeader(http.StatusNoContent)
}

// disposeSession drops the session named by the request cookie, if any, and expires the cookie.
func (s *Server) disposeSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		s.sessions.Delete(cookie.Value)
	}
	middleware.ClearCookie(w)
}

// actionError writes the JSON response for a failed action.
func (s *Server) actionError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var inputErr *interview.ValidationError
	if errors.As(err, &inputErr) {
		s.jsonResponse(w, status, WarningResponse{Warning: inputErr.Message, Fields: inputErr.Fields})
		return
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("action failed", slog.Any("error", err))
	}
	s.errorResponse(w, status, err.Error())
}

// requireSession fetches the session attached by the session middleware.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := middleware.GetSession(r)
	if err != nil {
		s.logger.Error("session missing from request", slog.Any("error", err))
		s.errorResponse(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return sess, true
}

// decodeJSON decodes a size-limited JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}
