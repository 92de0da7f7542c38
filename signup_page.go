package storefront

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const inputClass = "w-full pl-10 pr-4 py-3 border border-blue-300 rounded-lg focus:outline-none focus:ring-2 focus:ring-blue-500 transition duration-300"

// SignUp renders the registration page for the given draft. Values are
// echoed back so a failed attempt keeps what the user typed.
func (p *Pages) SignUp(d RegistrationDraft, ui UIState) g.Node {
	return p.document(
		"Sign Up | "+p.Brand,
		"",
		h.Div(h.Class("min-h-screen bg-gradient-to-br from-blue-50 to-blue-100 flex items-center justify-center p-4"),
			h.Div(h.Class("fixed top-0 left-0 w-full z-50"), p.navbar("/signup")),
			h.Div(h.Class("w-full max-w-md bg-white shadow-2xl rounded-2xl overflow-hidden mt-auto"),
				h.Div(h.Class("p-8"),
					h.Div(h.Class("text-center mb-8"),
						h.H2(h.Class("text-4xl font-extrabold text-gray-900 tracking-tight"), g.Text("Create Your Account")),
						h.P(h.Class("text-blue-600 mt-2"), g.Text("Join "+p.Brand)),
					),
					g.If(ui.Error != "", errorBanner(ui.Error)),
					p.signUpForm(d, ui),
					g.If(len(p.Providers) > 0, p.providerButtons()),
					h.P(h.Class("text-center text-gray-600 mt-6"),
						g.Text("Already have an account? "),
						h.A(h.Href("/login"), h.Class("text-blue-600 hover:underline"), g.Text("Log in")),
					),
				),
			),
		),
	)
}

func errorBanner(msg string) g.Node {
	return h.Div(
		h.ID("signup-error"),
		g.Attr("role", "alert"),
		h.Class("bg-red-50 border border-red-200 text-red-600 px-4 py-3 rounded-lg mb-6 text-center"),
		g.Text(msg),
	)
}

func (p *Pages) signUpForm(d RegistrationDraft, ui UIState) g.Node {
	fields := make([]g.Node, 0, len(draftFields))
	for _, f := range draftFields {
		fields = append(fields, fieldInput(f, d.value(f.Name), ui))
	}
	return h.Form(h.ID(SignUpFormID), h.Method("post"), h.Action("/signup"), h.Class("space-y-6"),
		h.Input(h.Type("hidden"), h.Name("showPassword"), h.Value(boolAttr(ui.ShowPassword))),
		g.Group(fields),
		h.Button(
			h.ID(SubmitButtonID),
			h.Type("submit"),
			h.Name("action"),
			h.Value("submit"),
			g.If(ui.Pending, h.Disabled()),
			h.Class("w-full bg-blue-500 text-white py-3 rounded-lg font-semibold hover:bg-blue-600 transition duration-300"),
			g.Text("Sign Up"),
		),
	)
}

func fieldInput(f draftField, value string, ui UIState) g.Node {
	typ := f.Type
	// only the primary password follows the visibility toggle
	if f.Name == "password" && ui.ShowPassword {
		typ = "text"
	}
	return h.Div(h.Class("relative"),
		g.El("label", g.Attr("for", f.Name), h.Class("sr-only"), g.Text(f.Label)),
		h.Input(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Type(typ),
			h.Placeholder(f.Placeholder),
			h.Value(value),
			h.Required(),
			h.Class(inputClass),
		),
		g.If(f.Name == "password", toggleButton(ui.ShowPassword)),
	)
}

// toggleButton flips masking through the browser module. It is a plain
// button so Enter in any field still submits the form.
func toggleButton(shown bool) g.Node {
	label := "Show password"
	if shown {
		label = "Hide password"
	}
	return h.Button(
		h.ID(TogglePasswordID),
		h.Type("button"),
		g.Attr("aria-label", label),
		g.Attr("aria-pressed", boolAttr(shown)),
		h.Class("absolute inset-y-0 right-0 pr-3 flex items-center text-blue-400 hover:text-blue-600 transition"),
		g.Text(label),
	)
}

func (p *Pages) providerButtons() g.Node {
	return h.Div(h.Class("mt-6 space-y-3"),
		g.Map(p.Providers, func(name string) g.Node {
			return h.A(
				h.Href("/oauth/"+name),
				h.Class("block w-full text-center border border-blue-300 text-blue-600 py-3 rounded-lg hover:bg-blue-50"),
				g.Text("Sign up with "+name),
			)
		}),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
