//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/nojs-confirm/confirm"
	"github.com/vcrobe/nojs-confirm/console"
	"github.com/vcrobe/nojs-confirm/dom/jsdom"
)

// presetAttribute on <body> names the preset to bind, e.g. "books-named".
// Every preset binds #deleteModal, so a page lists only one of them.
const presetAttribute = "data-delete-confirm"

func main() {
	doc := jsdom.Global()

	// 1. Wait for the markup: the modal must exist before we look it up
	doc.OnReady(func() {
		var list string
		if body := doc.QuerySelector("body"); body != nil {
			list, _ = body.GetAttribute(presetAttribute)
		}

		// 2. Resolve the page's presets
		cfgs, err := confirm.ParsePresets(list)
		if err != nil {
			panic("Error reading " + presetAttribute + ": " + err.Error())
		}

		// 3. Bind one modal per preset; a missing modal is fatal for this page
		for _, cfg := range cfgs {
			b, err := confirm.New(cfg)
			if err != nil {
				panic("Error configuring delete confirmation: " + err.Error())
			}
			if err := b.Initialize(doc); err != nil {
				console.Error("[confirm]", err.Error())
				panic("Error initializing delete confirmation: " + err.Error())
			}
		}
	})

	// Keep the Go program running so the listeners stay alive
	select {}
}
