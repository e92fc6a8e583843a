package mse

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/cardsmith/json-to-mse/internal/card"
)

// Options carries the set-level configuration a conversion run
// supplies.
type Options struct {
	Copyright       string
	SetCode         string
	AutoCardNumbers bool

	// BorderColor is emitted only when it differs from pure black,
	// the editor's default.
	BorderColor colorful.Color
}

// Set accumulates translated cards for one MSE game and writes the
// finished set file.
type Set struct {
	game Game
	doc  *Document
}

// NewSet builds the set-level metadata for numCards upcoming cards.
// The card count only affects the pluralization of the description.
func NewSet(game Game, opts Options, numCards int) *Set {
	title, gameName, style := "MTG JSON card import", "magic", "m15-altered"
	switch game {
	case GameArchenemy:
		title, gameName, style = "MTG JSON card import: Archenemy schemes", "archenemy", "standard"
	case GameVanguard:
		title, gameName, style = "MTG JSON card import: Vanguard avatars", "vanguard", "standard"
	}

	info := New()
	info.Push("title", Text(title))
	info.Push("copyright", Text(opts.Copyright))
	described := "These cards were"
	if numCards == 1 {
		described = "This card was"
	}
	info.Push("description", Text(described+" automatically imported from MTG JSON using json-to-mse."))
	info.Push("set code", Text(opts.SetCode))
	info.Push("set language", Text("EN"))
	info.Push("mark errors", Text("no"))
	info.Push("automatic reminder text", Text(""))
	autoNumbers := "no"
	if opts.AutoCardNumbers {
		autoNumbers = "yes"
	}
	info.Push("automatic card numbers", Text(autoNumbers))
	info.Push("mana cost sorting", Text("unsorted"))
	if opts.BorderColor != (colorful.Color{}) {
		r, g, b := opts.BorderColor.RGB255()
		info.Push("border color", Text(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)))
	}

	doc := New()
	doc.Push("mse version", Text("0.3.8"))
	doc.Push("game", Text(gameName))
	doc.Push("stylesheet", Text(style))
	doc.Push("set info", info)
	// styling needs to be above cards
	styling := New()
	styling.Push("magic-m15-altered", New())
	doc.Push("styling", styling)

	return &Set{game: game, doc: doc}
}

// AddCard appends one card's subtree. Cards appear in the set in the
// order they are added.
func (s *Set) AddCard(c *card.Card) {
	s.doc.Push("card", cardDocument(c, s.game))
}

// WriteTo writes the finished set archive to w.
func (s *Set) WriteTo(w io.Writer) error {
	return s.doc.WriteTo(w)
}
