package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mkravets/promptease/internal/common"
	"github.com/mkravets/promptease/internal/prompt"
	"github.com/mkravets/promptease/internal/server/auth"
	"github.com/mkravets/promptease/internal/server/models"
	"github.com/mkravets/promptease/internal/server/session"
)

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	APIKey   string `json:"api_key"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type paramsRequest struct {
	Task          string   `json:"task"`
	Mode          string   `json:"mode"`
	Style         string   `json:"style"`
	Persona       string   `json:"persona"`
	Depth         string   `json:"depth"`
	Format        string   `json:"format"`
	Languages     []string `json:"languages"`
	Tone          string   `json:"tone"`
	Domain        string   `json:"domain"`
	Creativity    float64  `json:"creativity"`
	BiasFilter    string   `json:"bias_filter"`
	SpeedQuality  string   `json:"speed_quality"`
	Memory        string   `json:"memory"`
	ModelOverride string   `json:"model_override"`
}

func (p paramsRequest) toParams() prompt.Params {
	return prompt.Params{
		Task:          p.Task,
		Mode:          p.Mode,
		Style:         p.Style,
		Persona:       p.Persona,
		Depth:         p.Depth,
		Format:        p.Format,
		Languages:     p.Languages,
		Tone:          p.Tone,
		Domain:        p.Domain,
		Creativity:    p.Creativity,
		BiasFilter:    p.BiasFilter,
		SpeedQuality:  p.SpeedQuality,
		Memory:        p.Memory,
		ModelOverride: p.ModelOverride,
	}
}

type submitRequest struct {
	Model  string        `json:"model"`
	Prompt string        `json:"prompt"`
	Params paramsRequest `json:"params"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := s.users.Register(r.Context(), req.Username, req.Password, req.APIKey)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, "please enter all fields")
			return
		}
		// Duplicate username and store faults both surface as a generic
		// creation failure; the cause is not disambiguated to the caller.
		s.logger.Error(r.Context(), "signup failed", "username", req.Username, "error", err.Error())
		writeError(w, http.StatusConflict, "error creating account")
		return
	}

	s.logger.Info(r.Context(), "account created", "username", req.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, "please enter all fields")
			return
		}
		if errors.Is(err, common.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Re-login on an existing session keeps its transcript; otherwise a
	// fresh session starts empty.
	sess := s.sessionFromRequest(r)
	if sess == nil {
		sess = s.sessions.Create()
	}
	sess.Login(user.Username, user.APIKey)

	token, err := auth.GenerateToken(sess.ID(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "login", "username", user.Username)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	// The session object survives so a re-login can restore the transcript;
	// only the identity is cleared.
	sess.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "please enter some text before submitting")
		return
	}

	sess.Append(models.Message{Role: models.RoleUser, Content: req.Prompt})

	apiKey := sess.APIKey()
	if apiKey == "" {
		apiKey = s.staticAPIKey
	}

	built := prompt.BuildRequest(req.Model, req.Prompt, req.Params.toParams())
	content := s.gateway.Complete(r.Context(), apiKey, built)

	reply := models.Message{Role: models.RoleAssistant, Content: content, Model: req.Model}
	sess.Append(reply)

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": []models.Message{
			{Role: models.RoleUser, Content: req.Prompt},
			reply,
		},
	})
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, map[string]any{
		"username": sess.Username(),
		"messages": sess.Messages(),
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"models": prompt.Tags()})
}
