//go:build !wasm

package storefront_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	_ "modernc.org/sqlite"

	"github.com/saifashionzone/storefront"
)

func init() {
	storefront.PasswordHashCost = bcrypt.MinCost
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatal(err)
	}
	return db
}

func newTestStore(t *testing.T, cfg storefront.Config) *storefront.Store {
	t.Helper()
	s, err := storefront.New(storefront.DBExecutor{DB: newTestDB(t)}, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestStoreSignup(t *testing.T) {
	s := newTestStore(t, storefront.Config{})
	ctx := context.Background()

	a, err := s.Signup(ctx, " Asha ", "Asha@X.com", "abc123", "9999999999")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if a.Email != "asha@x.com" {
		t.Errorf("expected normalized email 'asha@x.com', got '%s'", a.Email)
	}
	if a.Name != "Asha" || a.Phone != "9999999999" || a.Status != "active" {
		t.Errorf("unexpected account %+v", a)
	}

	got, err := s.GetAccount(a.ID)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if got != a {
		t.Errorf("expected %+v, got %+v", a, got)
	}

	if _, err := s.Login("asha@x.com", "abc123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := s.Login("asha@x.com", "wrong-pass"); !errors.Is(err, storefront.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := s.Signup(ctx, "Other", "asha@x.com", "abc123", ""); !errors.Is(err, storefront.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestStoreSignupWeakPassword(t *testing.T) {
	s := newTestStore(t, storefront.Config{MinPasswordLength: 8})

	if _, err := s.Signup(context.Background(), "Ravi", "ravi@x.com", "short", ""); !errors.Is(err, storefront.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := s.GetAccountByEmail("ravi@x.com"); !errors.Is(err, storefront.ErrNotFound) {
		t.Errorf("weak password must not leave an account, got %v", err)
	}
}

func TestStoreSignupCanceled(t *testing.T) {
	s := newTestStore(t, storefront.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Signup(ctx, "Ravi", "ravi@x.com", "abc123", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStoreSuspend(t *testing.T) {
	s := newTestStore(t, storefront.Config{})
	a, err := s.Signup(context.Background(), "Meera", "meera@x.com", "abc123", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SuspendAccount(a.ID); err != nil {
		t.Fatalf("SuspendAccount failed: %v", err)
	}
	if _, err := s.Login("meera@x.com", "abc123"); !errors.Is(err, storefront.ErrSuspended) {
		t.Errorf("expected ErrSuspended, got %v", err)
	}

	if err := s.ReactivateAccount(a.ID); err != nil {
		t.Fatalf("ReactivateAccount failed: %v", err)
	}
	if _, err := s.Login("meera@x.com", "abc123"); err != nil {
		t.Errorf("Login after reactivate failed: %v", err)
	}
}

func TestStoreSessions(t *testing.T) {
	s := newTestStore(t, storefront.Config{SessionTTL: 3600})
	a, err := s.CreateAccount("sess@x.com", "Sess", "")
	if err != nil {
		t.Fatal(err)
	}

	sess, err := s.CreateSession(a.ID, "127.0.0.1", "TestAgent")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	got, err := s.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.AccountID != a.ID {
		t.Errorf("session account mismatch: %s != %s", got.AccountID, a.ID)
	}

	if err := s.DeleteSession(sess.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := s.GetSession(sess.ID); !errors.Is(err, storefront.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSessionExpiry(t *testing.T) {
	s := newTestStore(t, storefront.Config{SessionTTL: -1})
	a, err := s.CreateAccount("old@x.com", "Old", "")
	if err != nil {
		t.Fatal(err)
	}
	sess, err := s.CreateSession(a.ID, "127.0.0.1", "TestAgent")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetSession(sess.ID); !errors.Is(err, storefront.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if err := s.PurgeExpiredSessions(); err != nil {
		t.Fatalf("PurgeExpiredSessions failed: %v", err)
	}
	if _, err := s.GetSession(sess.ID); !errors.Is(err, storefront.ErrNotFound) {
		t.Errorf("expected ErrNotFound after purge, got %v", err)
	}
}

func TestStoreIssueSession(t *testing.T) {
	s := newTestStore(t, storefront.Config{SessionCookieName: "sfz", TrustProxy: true})
	a, err := s.CreateAccount("cookie@x.com", "Cookie", "")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()

	if err := s.IssueSession(rec, req, a.ID); err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "sfz" {
		t.Fatalf("expected one 'sfz' cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Errorf("session cookie must be HttpOnly")
	}
	if !cookies[0].Secure {
		t.Errorf("session cookie must be Secure by default")
	}

	sess, err := s.GetSession(cookies[0].Value)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if sess.IP != "203.0.113.7" {
		t.Errorf("expected forwarded IP, got '%s'", sess.IP)
	}
}

type mockProvider struct {
	name string
	info storefront.OAuthUserInfo
}

func (m *mockProvider) Name() string                    { return m.name }
func (m *mockProvider) AuthCodeURL(state string) string { return "http://mock/" + state }
func (m *mockProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "mocktoken"}, nil
}
func (m *mockProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (storefront.OAuthUserInfo, error) {
	return m.info, nil
}

func beginState(t *testing.T, s *storefront.Store, provider string) string {
	t.Helper()
	url, err := s.BeginOAuth(provider)
	if err != nil {
		t.Fatalf("BeginOAuth failed: %v", err)
	}
	state, ok := strings.CutPrefix(url, "http://mock/")
	if !ok {
		t.Fatalf("unexpected consent url: %s", url)
	}
	return state
}

func TestStoreOAuth(t *testing.T) {
	p := &mockProvider{name: "mock", info: storefront.OAuthUserInfo{ID: "mockid", Email: "mock@x.com", Name: "Mock User"}}
	s := newTestStore(t, storefront.Config{OAuthProviders: []storefront.OAuthProvider{p}})
	ctx := context.Background()

	if got := s.Providers(); len(got) != 1 || got[0] != "mock" {
		t.Errorf("expected providers [mock], got %v", got)
	}

	state := beginState(t, s, "mock")
	a, created, err := s.CompleteOAuth(ctx, "mock", state, "code")
	if err != nil {
		t.Fatalf("CompleteOAuth failed: %v", err)
	}
	if !created {
		t.Errorf("expected a new account")
	}
	if a.Email != "mock@x.com" {
		t.Errorf("expected email mock@x.com, got %s", a.Email)
	}

	// state is single use
	if _, _, err := s.CompleteOAuth(ctx, "mock", state, "code"); !errors.Is(err, storefront.ErrInvalidOAuthState) {
		t.Errorf("expected ErrInvalidOAuthState on replay, got %v", err)
	}

	a2, created, err := s.CompleteOAuth(ctx, "mock", beginState(t, s, "mock"), "code")
	if err != nil {
		t.Fatalf("second CompleteOAuth failed: %v", err)
	}
	if created || a2.ID != a.ID {
		t.Errorf("expected the existing account, got created=%v id=%s", created, a2.ID)
	}

	if _, err := s.BeginOAuth("nope"); !errors.Is(err, storefront.ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestStoreOAuthLinksExistingEmail(t *testing.T) {
	p := &mockProvider{name: "mock", info: storefront.OAuthUserInfo{ID: "g-1", Email: "asha@x.com", Name: "Asha"}}
	s := newTestStore(t, storefront.Config{OAuthProviders: []storefront.OAuthProvider{p}})
	ctx := context.Background()

	local, err := s.Signup(ctx, "Asha", "asha@x.com", "abc123", "9999999999")
	if err != nil {
		t.Fatal(err)
	}

	a, created, err := s.CompleteOAuth(ctx, "mock", beginState(t, s, "mock"), "code")
	if err != nil {
		t.Fatalf("CompleteOAuth failed: %v", err)
	}
	if created || a.ID != local.ID {
		t.Fatalf("expected link to %s, got created=%v id=%s", local.ID, created, a.ID)
	}

	ids, err := s.AccountIdentities(local.ID)
	if err != nil {
		t.Fatalf("AccountIdentities failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected local and mock identities, got %d", len(ids))
	}
	if err := s.PurgeExpiredOAuthStates(); err != nil {
		t.Errorf("PurgeExpiredOAuthStates failed: %v", err)
	}
}

func TestStoreIssueSessionInsecureCookie(t *testing.T) {
	s := newTestStore(t, storefront.Config{InsecureCookie: true})
	a, err := s.CreateAccount("plain@x.com", "Plain", "")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	if err := s.IssueSession(rec, httptest.NewRequest(http.MethodPost, "/signup", nil), a.ID); err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Secure {
		t.Fatalf("expected one cookie without Secure, got %v", cookies)
	}
}

func TestStoreProvidersSorted(t *testing.T) {
	s := newTestStore(t, storefront.Config{OAuthProviders: []storefront.OAuthProvider{
		&mockProvider{name: "microsoft"},
		&mockProvider{name: "google"},
		&mockProvider{name: "apple"},
	}})

	for i := 0; i < 5; i++ {
		got := s.Providers()
		if strings.Join(got, ",") != "apple,google,microsoft" {
			t.Fatalf("expected sorted providers, got %v", got)
		}
	}
}

func TestSignUpFormSameEmailDifferentDrafts(t *testing.T) {
	s := newTestStore(t, storefront.Config{})
	form := storefront.NewSignUpForm(s)

	first := ashaDraft()
	first.Password, first.Confirm = "firstpw", "firstpw"
	second := storefront.RegistrationDraft{
		Name:     "Mallory",
		Email:    "ASHA@x.com ",
		Phone:    "8888888888",
		Password: "secondpw",
		Confirm:  "secondpw",
	}

	drafts := []storefront.RegistrationDraft{first, second}
	accounts := make([]storefront.Account, 2)
	errs := make([]error, 2)
	start := make(chan struct{})
	done := make(chan int)
	for i := range drafts {
		go func(i int) {
			<-start
			accounts[i], errs[i] = form.Submit(context.Background(), drafts[i])
			done <- i
		}(i)
	}
	close(start)
	<-done
	<-done

	winners := 0
	for i, err := range errs {
		if err != nil {
			if !errors.Is(err, storefront.ErrSignupFailed) {
				t.Errorf("draft %d: expected ErrSignupFailed, got %v", i, err)
			}
			continue
		}
		winners++
		if accounts[i].Name != drafts[i].Name {
			t.Errorf("draft %d received the account of %q", i, accounts[i].Name)
		}
		if _, err := s.Login("asha@x.com", drafts[i].Password); err != nil {
			t.Errorf("draft %d cannot log in with its own password: %v", i, err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one account for the address, got %d", winners)
	}
}
