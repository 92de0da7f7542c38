//go:build !wasm

package storefront

import (
	"strings"

	g "maragu.dev/gomponents"
)

func renderString(n g.Node) string {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func (m *homeModule) RenderHTML() string {
	return renderString(m.pages.Home())
}

func (m *signUpModule) RenderHTML() string {
	return renderString(m.pages.SignUp(RegistrationDraft{}, UIState{}))
}
