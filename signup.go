package storefront

import (
	"context"
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// SignUpForm runs the sign-up submission against an Authenticator. It never
// navigates: on success the caller sends the browser to LandingPath.
type SignUpForm struct {
	auth     Authenticator
	validate func(*RegistrationDraft) error
	log      zerolog.Logger
	inflight singleflight.Group
}

type SignUpOption func(*SignUpForm)

// WithFieldValidator adds a format check that runs after the presence and
// password confirmation checks.
func WithFieldValidator(fn func(*RegistrationDraft) error) SignUpOption {
	return func(f *SignUpForm) { f.validate = fn }
}

func WithSignUpLogger(l zerolog.Logger) SignUpOption {
	return func(f *SignUpForm) { f.log = l }
}

func NewSignUpForm(auth Authenticator, opts ...SignUpOption) *SignUpForm {
	f := &SignUpForm{auth: auth, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit validates the draft and, when it is complete and the passwords
// match, asks the authenticator to create the account.
//
// Errors: ValidationErrors for blank or malformed fields, ErrPasswordMismatch,
// or ErrSignupFailed for any authenticator failure; the authenticator's own
// error is logged and not returned. Concurrent submissions of an identical
// draft share a single authenticator call.
func (f *SignUpForm) Submit(ctx context.Context, d RegistrationDraft) (Account, error) {
	if errs := d.Missing(); len(errs) > 0 {
		return Account{}, errs
	}
	if d.Password != d.Confirm {
		return Account{}, ErrPasswordMismatch
	}
	if f.validate != nil {
		if err := f.validate(&d); err != nil {
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				verrs = ValidationErrors{{Message: err.Error()}}
			}
			return Account{}, verrs
		}
	}

	email := strings.ToLower(strings.TrimSpace(d.Email))
	v, err, shared := f.inflight.Do(submissionKey(d), func() (any, error) {
		return f.auth.Signup(ctx, d.Name, d.Email, d.Password, d.Phone)
	})
	if err != nil {
		f.log.Warn().Err(err).Str("email", email).Bool("shared", shared).Msg("signup failed")
		return Account{}, ErrSignupFailed
	}
	return v.(Account), nil
}

// submissionKey identifies a draft by every value sent to the authenticator,
// so only a repeat of the same submission joins an in-flight call.
func submissionKey(d RegistrationDraft) string {
	h := sha256.New()
	for _, v := range []string{d.Name, d.Email, d.Phone, d.Password} {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return string(h.Sum(nil))
}
