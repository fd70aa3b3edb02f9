package httpapi

import (
	"net/http"
	"strings"

	"github.com/mkravets/promptease/internal/server/auth"
	"github.com/mkravets/promptease/internal/server/session"
)

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves the caller's session from the Bearer token and
// requires it to be authenticated.
func (s *Server) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFromRequest(r)
		if sess == nil || !sess.Authenticated() {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, sess)
	}
}

// sessionFromRequest returns the live session named by the request's Bearer
// token, or nil. Used directly by login to re-attach an existing transcript.
func (s *Server) sessionFromRequest(r *http.Request) *session.Session {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil
	}

	sid, err := auth.SessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}
	return s.sessions.Get(sid)
}
