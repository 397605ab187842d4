// Package karte is a small glyph-art and tilemap editor built on
// [Ebitengine]. A bitmap-font sheet of 16×16 glyphs supplies every visual:
// canvases for painting, selectors for picking glyphs and colors, and
// buttons, labels, and panels for the surrounding chrome.
//
// The editor runs a single-threaded, poll-based frame loop. Each frame the
// [Input] snapshot is refreshed, every widget reacts to it, the widget
// state advances, and the glyphs are drawn.
//
// Widget collections and the texture registry sit on the generic
// containers in [github.com/phanxgames/karte/container].
//
// The simplest way to start the editor is [Run]:
//
//	cfg, err := karte.LoadConfig("karte.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := karte.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package karte
