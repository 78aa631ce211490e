package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jonathan/hiring-assistant/internal/interview"
	"github.com/jonathan/hiring-assistant/internal/session"
	"github.com/jonathan/hiring-assistant/internal/types"
)

// questionView is one question with its answer box on the page.
type questionView struct {
	Number int
	Text   string
	Answer string
}

// pageData is everything the page template renders.
type pageData struct {
	Profile    profileForm
	Questions  []questionView
	Evaluation string
	Warning    string
	Error      string
}

// profileForm holds the form values as typed, so invalid input is shown back unchanged.
type profileForm struct {
	Name            string
	Email           string
	Phone           string
	ExperienceYears string
	DesiredPosition string
	Location        string
	SkillStack      string
}

func profileFormFrom(p types.CandidateProfile) profileForm {
	return profileForm{
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		ExperienceYears: p.Experience(),
		DesiredPosition: p.DesiredPosition,
		Location:        p.Location,
		SkillStack:      p.SkillStack,
	}
}

// readProfileForm reads the seven profile inputs from a parsed form.
func readProfileForm(r *http.Request) profileForm {
	return profileForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		ExperienceYears: r.PostFormValue("experience_years"),
		DesiredPosition: r.PostFormValue("desired_position"),
		Location:        r.PostFormValue("location"),
		SkillStack:      r.PostFormValue("skill_stack"),
	}
}

// toProfile converts form values into a CandidateProfile. Experience must be a
// non-negative whole number.
func (f profileForm) toProfile() (types.CandidateProfile, error) {
	years, err := strconv.Atoi(strings.TrimSpace(f.ExperienceYears))
	if err != nil || years < 0 {
		return types.CandidateProfile{}, &interview.ValidationError{
			Field:   "experience_years",
			Message: "years of experience must be a whole number",
		}
	}
	return types.CandidateProfile{
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		ExperienceYears: years,
		DesiredPosition: f.DesiredPosition,
		Location:        f.Location,
		SkillStack:      f.SkillStack,
	}, nil
}

// newPageData builds the page from the session's stored state.
func newPageData(sess *session.Session) pageData {
	data := pageData{}
	if profile, ok := sess.Profile(); ok {
		data.Profile = profileFormFrom(profile)
	}

	answers := sess.Answers()
	for i, q := range sess.Questions() {
		data.Questions = append(data.Questions, questionView{Number: i + 1, Text: q, Answer: answers[i]})
	}
	return data
}

// handleIndex renders the page for the current session
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, newPageData(sess))
}

// handleQuestionsForm generates questions from the submitted profile form
func (s *Server) handleQuestionsForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if !s.parseForm(w, r) {
		return
	}

	form := readProfileForm(r)
	profile, err := form.toProfile()
	if err == nil {
		_, err = s.assistant.GenerateQuestions(r.Context(), sess, profile)
	}

	data := newPageData(sess)
	data.Profile = form
	s.renderResult(w, data, err)
}

// handleEvaluationForm stores the submitted answers and evaluates them
func (s *Server) handleEvaluationForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if !s.parseForm(w, r) {
		return
	}

	if err := storeFormAnswers(sess, r.PostForm); err != nil {
		s.logger.Warn("rejected answer field", slog.String("session", sess.ID()), slog.Any("error", err))
		s.renderResult(w, newPageData(sess), err)
		return
	}

	evaluation, err := s.assistant.EvaluateAnswers(r.Context(), sess)

	data := newPageData(sess)
	data.Evaluation = evaluation
	s.renderResult(w, data, err)
}

// storeFormAnswers copies every answer_<index> field into the session. All keys are
// checked before any slot is written, so a bad key leaves the answers untouched.
func storeFormAnswers(sess *session.Session, values url.Values) error {
	answers := make(map[int]string)
	for key := range values {
		suffix, ok := strings.CutPrefix(key, "answer_")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(suffix)
		if err != nil {
			return &ErrValidation{Field: key, Message: "answer index must be an integer"}
		}
		if i < 0 || i >= types.AnswerSlots {
			return fmt.Errorf("%s: %w", key, session.ErrAnswerIndex)
		}
		answers[i] = values.Get(key)
	}

	for i, text := range answers {
		if err := sess.SetAnswer(i, text); err != nil {
			return err
		}
	}
	return nil
}

// handleReset disposes the session and starts over
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.disposeSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderResult renders data with err shown as a warning or an error.
func (s *Server) renderResult(w http.ResponseWriter, data pageData, err error) {
	status := HTTPStatus(err)
	switch {
	case err == nil:
	case interview.IsWarning(err):
		data.Warning = warningText(err)
		status = http.StatusOK
	case status == http.StatusBadRequest:
		data.Error = err.Error()
	default:
		s.logger.Error("action failed", slog.Any("error", err))
		data.Error = "The assistant could not reach the model. Please try again."
	}
	s.render(w, status, data)
}

func warningText(err error) string {
	var inputErr *interview.ValidationError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	return "No questions were generated. Please try again."
}

// parseForm parses a size-limited form body, writing a 400 on failure.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		reqErr := &ErrValidation{Field: "form", Message: err.Error()}
		http.Error(w, reqErr.Error(), HTTPStatus(reqErr))
		return false
	}
	return true
}

// render executes the page template into a buffer so template errors never
// produce a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("failed to render page", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
