package storefront

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Category is one card of the homepage collections grid.
type Category struct {
	Image       string
	Title       string
	Description string
	Category    string
}

var DefaultCategories = []Category{
	{Image: "/assets/sarees.png", Title: "Sarees", Description: "Elevate your looks with our beautiful sarees.", Category: "Sarees"},
	{Image: "/assets/girlswear.png", Title: "Girl's wear", Description: "Curated dress models that speak volumes of your beauty.", Category: "Girl's wear"},
	{Image: "/assets/boyswear.png", Title: "Men's wear", Description: "Transform looks with our sophisticated outfits.", Category: "Men's wear"},
}

// Pages renders the storefront documents.
type Pages struct {
	Brand      string
	Categories []Category
	// FrontWASM is the URL of the browser module; empty pages ship no script.
	FrontWASM string
	// WASMExec is the URL of Go's wasm_exec.js loader.
	WASMExec string
	// Providers lists OAuth providers offered on the sign-up page.
	Providers []string
}

func DefaultPages() *Pages {
	return &Pages{
		Brand:      "SaiFashionZone",
		Categories: DefaultCategories,
	}
}

// Element ids shared with the browser module.
const (
	ScrollBarID       = "scroll-progress"
	SignUpFormID      = "signup-form"
	PasswordInputID   = "password"
	TogglePasswordID  = "toggle-password"
	SubmitButtonID    = "signup-submit"
	gradientText      = "text-transparent bg-clip-text bg-gradient-to-r from-blue-500 to-blue-700"
	pillButtonPrimary = "bg-gradient-to-r from-blue-500 to-blue-700 text-white hover:opacity-90 px-10 py-3 rounded-full uppercase text-sm tracking-wider font-semibold shadow-xl transition-all"
)

type navLink struct {
	Href, Text string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/shop", "Shop"},
	{"/about", "About"},
	{"/login", "Login"},
	{"/signup", "Sign Up"},
}

func (p *Pages) document(title, description string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				g.If(description != "", h.Meta(h.Name("description"), h.Content(description))),
			),
			h.Body(
				g.Group(body),
				g.If(p.FrontWASM != "", p.frontScripts()),
			),
		),
	)
}

func (p *Pages) frontScripts() g.Node {
	return g.Group([]g.Node{
		h.Script(h.Src(p.WASMExec)),
		h.Script(g.Raw(`const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + p.FrontWASM + `"), go.importObject).then((r) => go.run(r.instance));`)),
	})
}

func (p *Pages) navbar(active string) g.Node {
	return h.Nav(h.Class("w-full bg-white/90 backdrop-blur shadow"),
		h.Div(h.Class("container mx-auto flex items-center justify-between px-4 py-3"),
			h.A(h.Href("/"), h.Class("text-2xl font-extrabold "+gradientText), g.Text(p.Brand)),
			h.Ul(h.Class("flex gap-6"),
				g.Map(navLinks, func(l navLink) g.Node {
					return h.Li(h.A(
						h.Href(l.Href),
						h.Class("text-gray-700 hover:text-blue-600"),
						g.If(l.Href == active, g.Attr("aria-current", "page")),
						g.Text(l.Text),
					))
				}),
			),
		),
	)
}

func (p *Pages) footer() g.Node {
	return h.Footer(h.Class("bg-gray-900 text-gray-300 py-10"),
		h.Div(h.Class("container mx-auto max-w-6xl px-4 text-center"),
			h.P(h.Class("text-lg font-semibold text-white"), g.Text(p.Brand)),
			h.P(h.Class("mt-2 text-sm"), g.Text("Unique gifts and thoughtful collections for every occasion.")),
		),
	)
}

// scrollBar starts empty; the browser module scales it as the page scrolls.
func scrollBar() g.Node {
	return h.Div(
		h.ID(ScrollBarID),
		h.Class("fixed top-0 left-0 h-1 w-full bg-gradient-to-r from-blue-500 to-blue-700 origin-left z-50"),
		g.Attr("style", "transform: scaleX(0)"),
		g.Attr("role", "progressbar"),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", "100"),
		g.Attr("aria-valuenow", "0"),
	)
}
