package storefront

import (
	"errors"
	"strings"

	"github.com/tinywasm/fmt"
)

// User-facing banner texts.
const (
	MsgPasswordMismatch = "Passwords do not match"
	MsgSignupFailed     = "Error signing up. Try again."
)

// RegistrationDraft holds the sign-up inputs while the form is on screen.
// Field names match the inputs registered with the form validator; Phone
// carries the mobile number.
type RegistrationDraft struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Confirm  string
}

// Schema describes the draft for the form validator. Input names the
// registered input type whose rules check each field.
func (d *RegistrationDraft) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: "name", Type: fmt.FieldText, NotNull: true, Input: "text"},
		{Name: "email", Type: fmt.FieldText, NotNull: true, Input: "email"},
		{Name: "mobile", Type: fmt.FieldText, NotNull: true, Input: "tel"},
		{Name: "password", Type: fmt.FieldText, NotNull: true, Input: "password"},
		{Name: "confirmPassword", Type: fmt.FieldText, NotNull: true, Input: "password"},
	}
}

func (d *RegistrationDraft) Pointers() []any {
	return []any{&d.Name, &d.Email, &d.Phone, &d.Password, &d.Confirm}
}

func (d *RegistrationDraft) FormName() string { return "signup" }

// draftField describes one input of the sign-up form.
type draftField struct {
	Name        string // form field name
	Label       string
	Type        string // HTML input type
	Placeholder string
}

var draftFields = []draftField{
	{Name: "name", Label: "Full Name", Type: "text", Placeholder: "Full Name"},
	{Name: "email", Label: "Email Address", Type: "email", Placeholder: "Email Address"},
	{Name: "mobile", Label: "Mobile Number", Type: "tel", Placeholder: "Mobile Number"},
	{Name: "password", Label: "Password", Type: "password", Placeholder: "Password"},
	{Name: "confirmPassword", Label: "Confirm Password", Type: "password", Placeholder: "Confirm Password"},
}

func (d *RegistrationDraft) value(field string) string {
	switch field {
	case "name":
		return d.Name
	case "email":
		return d.Email
	case "mobile":
		return d.Phone
	case "password":
		return d.Password
	case "confirmPassword":
		return d.Confirm
	}
	return ""
}

// Set updates a single field by its form name and reports whether the name
// was known.
func (d *RegistrationDraft) Set(field, v string) bool {
	switch field {
	case "name":
		d.Name = v
	case "email":
		d.Email = v
	case "mobile":
		d.Phone = v
	case "password":
		d.Password = v
	case "confirmPassword":
		d.Confirm = v
	default:
		return false
	}
	return true
}

// Missing returns one FieldError per blank field, in form order. Passwords
// are not trimmed: a password of spaces is a password.
func (d *RegistrationDraft) Missing() ValidationErrors {
	var errs ValidationErrors
	for _, f := range draftFields {
		v := d.value(f.Name)
		if f.Type != "password" {
			v = strings.TrimSpace(v)
		}
		if v == "" {
			errs = append(errs, FieldError{Field: f.Name, Message: f.Label + " is required"})
		}
	}
	return errs
}

// FieldError reports a problem with one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Field returns the error for the named field, if any.
func (v ValidationErrors) Field(name string) (FieldError, bool) {
	for _, e := range v {
		if e.Field == name {
			return e, true
		}
	}
	return FieldError{}, false
}

// UIState is the display state of the sign-up form.
type UIState struct {
	ShowPassword bool
	Error        string
	Pending      bool
}

// TogglePassword flips input masking; the draft is untouched.
func (s *UIState) TogglePassword() { s.ShowPassword = !s.ShowPassword }

// Edited returns the form to idle after the user changes a field.
func (s *UIState) Edited() { s.Error = "" }

// Fail records the banner text for err.
func (s *UIState) Fail(err error) { s.Error = UserMessage(err) }

// UserMessage maps a Submit error to the banner shown above the form.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	if errors.Is(err, ErrPasswordMismatch) {
		return MsgPasswordMismatch
	}
	return MsgSignupFailed
}
