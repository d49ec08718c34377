package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/at-ishikawa/metaboschema/internal/shell"
)

const (
	sessionCookieName  = "metaboschema_session"
	defaultMaxSessions = 1024
)

// session is the presentation state of one browser. mu serializes its events.
type session struct {
	id    string
	mu    sync.Mutex
	shell *shell.Shell
	// flash is shown on the next page render only.
	flash *shell.Notice
}

func (s *session) takeFlash() *shell.Notice {
	notice := s.flash
	s.flash = nil
	return notice
}

type sessionStore struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, *session]
	newShell func(id string) (*shell.Shell, error)
	onResize func(n int)
	// release is called with the id of an evicted session once no request holds it.
	release  func(id string)
	releases sync.WaitGroup
}

func newSessionStore(size int, newShell func(id string) (*shell.Shell, error), onResize func(n int), release func(id string)) (*sessionStore, error) {
	if size <= 0 {
		size = defaultMaxSessions
	}
	if onResize == nil {
		onResize = func(int) {}
	}
	st := &sessionStore{
		newShell: newShell,
		onResize: onResize,
		release:  release,
	}
	cache, err := lru.NewWithEvict[string, *session](size, st.evicted)
	if err != nil {
		return nil, fmt.Errorf("lru.NewWithEvict() > %w", err)
	}
	st.cache = cache
	return st, nil
}

func (st *sessionStore) evicted(id string, sess *session) {
	if st.release == nil {
		return
	}
	st.releases.Add(1)
	go func() {
		defer st.releases.Done()
		// Wait for a request that still holds the session.
		sess.mu.Lock()
		defer sess.mu.Unlock()
		st.release(id)
	}()
}

// wait blocks until every evicted session has been released.
func (st *sessionStore) wait() {
	st.releases.Wait()
}

// getOrCreate returns the session id, or a new idle session when id is unknown or evicted.
func (st *sessionStore) getOrCreate(id string) (*session, bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if sess, ok := st.cache.Get(id); ok {
			return sess, false, nil
		}
	}

	newID := uuid.NewString()
	sh, err := st.newShell(newID)
	if err != nil {
		return nil, false, fmt.Errorf("newShell() > %w", err)
	}
	sess := &session{id: newID, shell: sh}
	st.cache.Add(newID, sess)
	st.onResize(st.cache.Len())
	return sess, true, nil
}

func (st *sessionStore) len() int {
	return st.cache.Len()
}

// withSession resolves the session of the request and handles the request while holding its lock.
func (s *Server) withSession(handle func(w http.ResponseWriter, r *http.Request, sess *session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				id = cookie.Value
			}
		}

		sess, created, err := s.sessions.getOrCreate(id)
		if err != nil {
			s.logger.Error("failed to create a session", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		handle(w, r, sess)
	}
}
