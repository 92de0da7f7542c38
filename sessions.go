//go:build !wasm

package storefront

import (
	"database/sql"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

func (s *Store) CreateSession(accountID, ip, userAgent string) (Session, error) {
	id, err := newID()
	if err != nil {
		return Session{}, err
	}

	now := time.Now().Unix()
	sess := Session{
		ID:        id,
		AccountID: accountID,
		ExpiresAt: now + int64(s.config.SessionTTL),
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: now,
	}

	if err := s.exec.Exec(
		`INSERT INTO account_sessions (id, account_id, expires_at, ip, user_agent, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.AccountID, sess.ExpiresAt, sess.IP, sess.UserAgent, sess.CreatedAt,
	); err != nil {
		return Session{}, err
	}
	s.cache.set(sess)
	return sess, nil
}

func (s *Store) GetSession(id string) (Session, error) {
	if sess, ok := s.cache.get(id); ok {
		if sess.ExpiresAt < time.Now().Unix() {
			s.cache.delete(id)
			return Session{}, ErrSessionExpired
		}
		return sess, nil
	}

	var sess Session
	err := s.exec.QueryRow(
		"SELECT id, account_id, expires_at, ip, user_agent, created_at FROM account_sessions WHERE id = ?",
		id,
	).Scan(&sess.ID, &sess.AccountID, &sess.ExpiresAt, &sess.IP, &sess.UserAgent, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	if sess.ExpiresAt < time.Now().Unix() {
		return Session{}, ErrSessionExpired
	}

	s.cache.set(sess)
	return sess, nil
}

func (s *Store) DeleteSession(id string) error {
	s.cache.delete(id)
	return s.exec.Exec("DELETE FROM account_sessions WHERE id = ?", id)
}

func (s *Store) PurgeExpiredSessions() error {
	now := time.Now().Unix()
	s.cache.purge(now)
	return s.exec.Exec("DELETE FROM account_sessions WHERE expires_at < ?", now)
}

// IssueSession opens a session for the account and sets its cookie on w.
func (s *Store) IssueSession(w http.ResponseWriter, r *http.Request, accountID string) error {
	sess, err := s.CreateSession(accountID, clientIP(r, s.config.TrustProxy), r.UserAgent())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.SessionCookieName,
		Value:    sess.ID,
		HttpOnly: true,
		Secure:   !s.config.InsecureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionTTL,
		Path:     "/",
	})
	return nil
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
