//go:build !wasm

package storefront

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	g "maragu.dev/gomponents"
)

// SessionIssuer signs a freshly registered account in.
type SessionIssuer interface {
	IssueSession(w http.ResponseWriter, r *http.Request, accountID string) error
}

// OAuthFlow is the provider sign-up round trip.
type OAuthFlow interface {
	BeginOAuth(provider string) (string, error)
	CompleteOAuth(ctx context.Context, provider, state, code string) (Account, bool, error)
}

// Server routes the storefront pages.
type Server struct {
	pages    *Pages
	form     *SignUpForm
	sessions SessionIssuer
	oauth    OAuthFlow
	assets   http.Handler
	log      zerolog.Logger
	mux      *http.ServeMux
}

type ServerOption func(*Server)

func WithPages(p *Pages) ServerOption { return func(s *Server) { s.pages = p } }

func WithSessions(si SessionIssuer) ServerOption { return func(s *Server) { s.sessions = si } }

func WithOAuth(o OAuthFlow) ServerOption { return func(s *Server) { s.oauth = o } }

// WithAssets serves dir under /assets/.
func WithAssets(dir string) ServerOption {
	return func(s *Server) {
		s.assets = http.StripPrefix("/assets/", http.FileServer(http.Dir(dir)))
	}
}

func WithServerLogger(l zerolog.Logger) ServerOption { return func(s *Server) { s.log = l } }

func NewServer(form *SignUpForm, opts ...ServerOption) *Server {
	s := &Server{
		pages: DefaultPages(),
		form:  form,
		log:   zerolog.Nop(),
		mux:   http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET "+LandingPath, s.handleHome)
	s.mux.HandleFunc("GET /signup", s.handleSignUpPage)
	s.mux.HandleFunc("POST /signup", s.handleSignUp)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.oauth != nil {
		s.mux.HandleFunc("GET /oauth/{provider}", s.handleOAuthBegin)
		s.mux.HandleFunc("GET /oauth/{provider}/callback", s.handleOAuthCallback)
	}
	if s.assets != nil {
		s.mux.Handle("GET /assets/", s.assets)
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Handler wraps the routes with request-scoped logging.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s
	h = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})(h)
	h = hlog.RemoteAddrHandler("ip")(h)
	return hlog.NewHandler(s.log)(h)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render page")
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.pages.Home())
}

func (s *Server) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	var ui UIState
	if r.URL.Query().Get("error") != "" {
		ui.Error = MsgSignupFailed
	}
	s.render(w, r, http.StatusOK, s.pages.SignUp(RegistrationDraft{}, ui))
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	var d RegistrationDraft
	for _, f := range draftFields {
		d.Set(f.Name, r.PostForm.Get(f.Name))
	}
	ui := UIState{ShowPassword: r.PostForm.Get("showPassword") == "true"}

	a, err := s.form.Submit(r.Context(), d)
	if err != nil {
		ui.Fail(err)
		s.render(w, r, http.StatusUnprocessableEntity, s.pages.SignUp(d, ui))
		return
	}
	s.signIn(w, r, a)
	http.Redirect(w, r, LandingPath, http.StatusSeeOther)
}

// signIn opens a session when an issuer is configured. A failure here does
// not undo the sign-up; the user can still log in.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, a Account) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.IssueSession(w, r, a.ID); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("account_id", a.ID).Msg("issue session")
	}
}

func (s *Server) handleOAuthBegin(w http.ResponseWriter, r *http.Request) {
	url, err := s.oauth.BeginOAuth(r.PathValue("provider"))
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			http.NotFound(w, r)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("begin oauth")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")
	q := r.URL.Query()
	a, created, err := s.oauth.CompleteOAuth(r.Context(), provider, q.Get("state"), q.Get("code"))
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("provider", provider).Msg("complete oauth")
		http.Redirect(w, r, "/signup?error=oauth", http.StatusSeeOther)
		return
	}
	hlog.FromRequest(r).Info().Str("account_id", a.ID).Bool("created", created).Msg("oauth sign-in")
	s.signIn(w, r, a)
	http.Redirect(w, r, LandingPath, http.StatusSeeOther)
}
