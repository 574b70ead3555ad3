package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/session"
)

const cookieName = "proxsite_session"

// loadSession returns the caller's record, starting a new one when the
// cookie is missing, unknown or expired. The cookie is written by
// saveSession.
func (s *Server) loadSession(r *http.Request) session.Record {
	if c, err := r.Cookie(cookieName); err == nil {
		if rec, ok := s.opts.Sessions.Get(c.Value); ok {
			return rec
		}
	}
	rec := session.Record{
		ID:     session.NewID(),
		Code:   playground.DefaultCode(),
		Output: playground.Placeholder,
		Status: playground.StatusReady,
	}
	return rec
}

// saveSession stores rec and re-issues the cookie so its lifetime follows
// the store's sliding TTL.
func (s *Server) saveSession(w http.ResponseWriter, r *http.Request, rec session.Record) {
	if err := s.opts.Sessions.Put(rec); err != nil {
		log.Printf("[%s] saving session: %v", middleware.GetReqID(r.Context()), err)
		return
	}
	s.setCookie(w, rec.ID)
}

func (s *Server) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   strings.HasPrefix(s.opts.BaseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	})
}
