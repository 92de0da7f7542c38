package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

// oauthClient holds a provider's oauth2.Config, built on first use.
type oauthClient struct {
	once   sync.Once
	config *oauth2.Config
}

func (c *oauthClient) get(build func() *oauth2.Config) *oauth2.Config {
	c.once.Do(func() { c.config = build() })
	return c.config
}

// fetchJSON GETs url with the token's client and decodes the body into v.
func fetchJSON(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, url string, v any) error {
	resp, err := cfg.Client(ctx, token).Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrInvalidCredentials
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

type GoogleProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	client       oauthClient
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) cfg() *oauth2.Config {
	return p.client.get(func() *oauth2.Config {
		return &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		}
	})
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg().AuthCodeURL(state)
}

func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.cfg().Exchange(ctx, code)
}

func (p *GoogleProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error) {
	var data struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := fetchJSON(ctx, p.cfg(), token, "https://www.googleapis.com/oauth2/v2/userinfo", &data); err != nil {
		return OAuthUserInfo{}, err
	}
	return OAuthUserInfo{ID: data.ID, Email: data.Email, Name: data.Name}, nil
}

type MicrosoftProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	client       oauthClient
}

func (p *MicrosoftProvider) Name() string { return "microsoft" }

func (p *MicrosoftProvider) cfg() *oauth2.Config {
	return p.client.get(func() *oauth2.Config {
		return &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURL,
			Scopes:       []string{"User.Read"},
			Endpoint:     microsoft.AzureADEndpoint("common"),
		}
	})
}

func (p *MicrosoftProvider) AuthCodeURL(state string) string {
	return p.cfg().AuthCodeURL(state)
}

func (p *MicrosoftProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.cfg().Exchange(ctx, code)
}

func (p *MicrosoftProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error) {
	var data struct {
		ID                string `json:"id"`
		Email             string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		Name              string `json:"displayName"`
	}
	if err := fetchJSON(ctx, p.cfg(), token, "https://graph.microsoft.com/v1.0/me", &data); err != nil {
		return OAuthUserInfo{}, err
	}
	email := data.Email
	if email == "" {
		email = data.UserPrincipalName
	}
	return OAuthUserInfo{ID: data.ID, Email: email, Name: data.Name}, nil
}
