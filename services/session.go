package services

import (
	"net/http"

	"Reelrank/config"

	"github.com/gorilla/sessions"
)

const sessionName = "reelrank-session"

// SessionManager wraps the signed cookie store. Its only job here is
// flash messages between the redirect hops of the add/edit flow.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// Flash queues a message to show on the next rendered page.
func (s *SessionManager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; keep going.
		session, _ = s.store.New(r, sessionName)
	}
	session.AddFlash(msg)
	_ = session.Save(r, w)
}

// Flashes drains and returns the queued messages.
func (s *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
