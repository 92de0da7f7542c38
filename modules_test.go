//go:build !wasm

package storefront_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saifashionzone/storefront"
)

func TestModules(t *testing.T) {
	if storefront.HomeModule.HandlerName() != "home" {
		t.Errorf("expected handler name home, got %s", storefront.HomeModule.HandlerName())
	}
	if storefront.SignUpModule.HandlerName() != "signup" {
		t.Errorf("expected handler name signup, got %s", storefront.SignUpModule.HandlerName())
	}
	if storefront.SignUpModule.ModuleTitle() != "Sign Up" {
		t.Errorf("expected title Sign Up, got %s", storefront.SignUpModule.ModuleTitle())
	}
}

func TestModulesSSR(t *testing.T) {
	if out := storefront.HomeModule.RenderHTML(); !strings.Contains(out, "Our Collections") {
		t.Errorf("HomeModule.RenderHTML() should contain the collections")
	}
	if out := storefront.SignUpModule.RenderHTML(); !strings.Contains(out, "<form") {
		t.Errorf("SignUpModule.RenderHTML() should contain <form")
	}
}

func TestSignUpModuleValidateDraft(t *testing.T) {
	d := ashaDraft()
	if err := storefront.SignUpModule.ValidateDraft(&d); err != nil {
		t.Fatalf("expected a valid draft, got %v", err)
	}

	cases := map[string]func(*storefront.RegistrationDraft){
		"phone with letters": func(d *storefront.RegistrationDraft) { d.Phone = "abc" },
		"short phone":        func(d *storefront.RegistrationDraft) { d.Phone = "12345" },
		"email with space":   func(d *storefront.RegistrationDraft) { d.Email = "asha@x com" },
		"short email":        func(d *storefront.RegistrationDraft) { d.Email = "a@b" },
		"short password":     func(d *storefront.RegistrationDraft) { d.Password, d.Confirm = "abc", "abc" },
	}
	for name, edit := range cases {
		t.Run(name, func(t *testing.T) {
			d := ashaDraft()
			edit(&d)
			if err := storefront.SignUpModule.ValidateDraft(&d); err == nil {
				t.Errorf("expected %+v to be rejected", d)
			}
		})
	}
}

func TestSubmitWithModuleValidator(t *testing.T) {
	auth := &fakeAuth{}
	form := storefront.NewSignUpForm(auth, storefront.WithFieldValidator(storefront.SignUpModule.ValidateDraft))

	if _, err := form.Submit(context.Background(), ashaDraft()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	d := ashaDraft()
	d.Phone = "abc"
	_, err := form.Submit(context.Background(), d)
	var verrs storefront.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if n := auth.calls.Load(); n != 1 {
		t.Errorf("a malformed draft must not reach the authenticator, got %d calls", n)
	}
}
