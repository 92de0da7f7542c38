//go:build wasm

// Command front is the browser module loaded by the storefront pages.
package main

import "github.com/saifashionzone/storefront"

func main() {
	storefront.BindScrollBar()
	storefront.BindSignUpForm()
	select {}
}
