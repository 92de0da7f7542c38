//go:build wasm

package storefront

import (
	"strconv"
	"syscall/js"
)

// windowViewport reads scroll geometry from the browser window.
type windowViewport struct {
	window js.Value
	doc    js.Value
}

func newWindowViewport() windowViewport {
	return windowViewport{
		window: js.Global().Get("window"),
		doc:    js.Global().Get("document").Get("documentElement"),
	}
}

func (v windowViewport) ScrollOffset() float64   { return v.window.Get("scrollY").Float() }
func (v windowViewport) DocumentHeight() float64 { return v.doc.Get("scrollHeight").Float() }
func (v windowViewport) ViewportHeight() float64 { return v.window.Get("innerHeight").Float() }

func (v windowViewport) OnScroll(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	v.window.Call("addEventListener", "scroll", cb)
	v.window.Call("addEventListener", "resize", cb)
	return func() {
		v.window.Call("removeEventListener", "scroll", cb)
		v.window.Call("removeEventListener", "resize", cb)
		cb.Release()
	}
}

// BindScrollBar drives the progress bar element, if the page has one.
func BindScrollBar() *ScrollProgress {
	bar := js.Global().Get("document").Call("getElementById", ScrollBarID)
	if bar.IsNull() {
		return nil
	}
	sp := NewScrollProgress(newWindowViewport(), func(p float64) {
		bar.Get("style").Set("transform", "scaleX("+strconv.FormatFloat(p/100, 'f', 4, 64)+")")
		bar.Call("setAttribute", "aria-valuenow", strconv.Itoa(int(p)))
	})
	sp.Mount()
	return sp
}

// BindSignUpForm toggles password masking in place and disables the submit
// button once the form is sent, so a double click posts once.
func BindSignUpForm() {
	doc := js.Global().Get("document")
	form := doc.Call("getElementById", SignUpFormID)
	if form.IsNull() {
		return
	}
	password := doc.Call("getElementById", PasswordInputID)
	toggle := doc.Call("getElementById", TogglePasswordID)
	submit := doc.Call("getElementById", SubmitButtonID)

	var ui UIState
	ui.ShowPassword = password.Get("type").String() == "text"

	toggle.Call("addEventListener", "click", js.FuncOf(func(_ js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		ui.TogglePassword()
		typ := "password"
		label := "Show password"
		if ui.ShowPassword {
			typ = "text"
			label = "Hide password"
		}
		password.Set("type", typ)
		toggle.Set("textContent", label)
		toggle.Call("setAttribute", "aria-label", label)
		toggle.Call("setAttribute", "aria-pressed", boolAttr(ui.ShowPassword))
		form.Get("elements").Get("showPassword").Set("value", boolAttr(ui.ShowPassword))
		return nil
	}))

	clearBanner := js.FuncOf(func(js.Value, []js.Value) any {
		ui.Edited()
		if banner := doc.Call("getElementById", "signup-error"); !banner.IsNull() {
			banner.Call("remove")
		}
		return nil
	})
	form.Call("addEventListener", "input", clearBanner)

	form.Call("addEventListener", "submit", js.FuncOf(func(js.Value, []js.Value) any {
		ui.Pending = true
		submit.Set("disabled", true)
		return nil
	}))
}
