// Package storefront serves the customer-facing pages of the SaiFashionZone
// shop: the marketing homepage and the account sign-up form, together with
// the local account store the sign-up form registers users against.
package storefront

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tinywasm/fmt"
	"golang.org/x/oauth2"
)

// LandingPath is where the browser goes after a successful sign-up.
const LandingPath = "/HomePage"

var (
	ErrInvalidCredentials = fmt.Err("access", "denied")         // EN: Access Denied         / ES: Acceso Denegado
	ErrSuspended          = fmt.Err("user", "suspended")        // EN: User Suspended        / ES: Usuario Suspendido
	ErrEmailTaken         = fmt.Err("email", "registered")      // EN: Email Registered      / ES: Correo electrónico Registrado
	ErrWeakPassword       = fmt.Err("password", "weak")         // EN: Password Weak         / ES: Contraseña Débil
	ErrSessionExpired     = fmt.Err("token", "expired")         // EN: Token Expired         / ES: Token Expirado
	ErrNotFound           = fmt.Err("user", "not", "found")     // EN: User Not Found        / ES: Usuario No Encontrado
	ErrProviderNotFound   = fmt.Err("provider", "not", "found") // EN: Provider Not Found    / ES: Proveedor No Encontrado
	ErrInvalidOAuthState  = fmt.Err("state", "invalid")         // EN: State Invalid         / ES: Estado Inválido
	ErrPasswordMismatch   = fmt.Err("password", "mismatch")     // EN: Password Mismatch     / ES: Contraseña No Coincide
	ErrSignupFailed       = fmt.Err("register", "failed")       // EN: Register Failed       / ES: Registro Fallido
)

// Account is the canonical user record owned by the authentication provider.
type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"` // "active", "suspended"
	CreatedAt int64  `json:"created_at"`
}

type Session struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	ExpiresAt int64  `json:"expires_at"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type Identity struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Email      string `json:"email,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

type OAuthUserInfo struct {
	ID    string
	Email string
	Name  string
}

type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error)
}

// Authenticator creates accounts. The sign-up form depends only on this
// interface so any provider, local or remote, can back it.
type Authenticator interface {
	Signup(ctx context.Context, name, email, password, mobile string) (Account, error)
}

type Config struct {
	SessionCookieName string // default: "session"
	SessionTTL        int    // default: 86400 (24h)
	TrustProxy        bool   // default: false
	InsecureCookie    bool   // default: false; set for plain HTTP deployments
	MinPasswordLength int    // default: 6
	OAuthProviders    []OAuthProvider
	Logger            *zerolog.Logger // default: zerolog.Nop()
}

func (c *Config) setDefaults() {
	if c.SessionCookieName == "" {
		c.SessionCookieName = "session"
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 86400
	}
	if c.MinPasswordLength == 0 {
		c.MinPasswordLength = 6
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
}
