package storefront

import (
	"github.com/tinywasm/fmt"
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
)

// actionCreate is the CRUD action byte for a new record.
const actionCreate byte = 'c'

var (
	HomeModule   *homeModule
	SignUpModule *signUpModule
)

func init() {
	pages := DefaultPages()
	HomeModule = &homeModule{pages: pages}
	SignUpModule = &signUpModule{form: mustForm("signup", &RegistrationDraft{}), pages: pages}
}

func mustForm(parentID string, s fmt.Fielder) *form.Form {
	f, err := form.New(parentID, s)
	if err != nil {
		panic("storefront: mustForm: " + err.Error())
	}
	return f
}

type homeModule struct {
	pages *Pages
}

func (m *homeModule) HandlerName() string { return "home" }
func (m *homeModule) ModuleTitle() string { return "Home" }

type signUpModule struct {
	form  *form.Form
	pages *Pages
}

func (m *signUpModule) HandlerName() string { return "signup" }
func (m *signUpModule) ModuleTitle() string { return "Sign Up" }

func (m *signUpModule) ValidateData(action byte, data fmt.Fielder) error {
	return m.form.ValidateData(action, data)
}

// ValidateDraft checks field formats (e-mail, phone) of a complete draft.
func (m *signUpModule) ValidateDraft(d *RegistrationDraft) error {
	return m.ValidateData(actionCreate, d)
}
