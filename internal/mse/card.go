package mse

import (
	"fmt"
	"strings"

	"github.com/cardsmith/json-to-mse/internal/card"
)

// Game selects which MSE game template a set targets and which card
// fields get emitted.
type Game int

const (
	GameMagic Game = iota
	GameArchenemy
	GameVanguard
)

var rarityValues = map[card.Rarity]string{
	card.RarityLand:     "basic land",
	card.RarityCommon:   "common",
	card.RarityUncommon: "uncommon",
	card.RarityRare:     "rare",
	card.RarityMythic:   "mythic rare",
	card.RaritySpecial:  "special",
}

// cardDocument translates one card into its set-file subtree. An
// alternate face emits every field under a " 2"-suffixed key; a
// primary multi-face card gets the secondary face's fields spliced in
// directly after its own.
func cardDocument(c *card.Card, game Game) *Document {
	doc := New()
	push := func(key, text string) {
		if c.Alt {
			key += " 2"
		}
		doc.Push(key, Text(text))
	}

	// name
	push("name", c.Name)
	// mana cost
	if c.ManaCost != nil {
		push("casting cost", ManaCostString(c.ManaCost))
	}
	// type line
	if game == GameArchenemy {
		// Archenemy templates have no separate subtypes field.
		push("type", c.TypeLine.String())
	} else {
		var words []string
		for _, supertype := range c.TypeLine.Supertypes {
			words = append(words, "<word-list-type>"+supertype+"</word-list-type>")
		}
		for _, cardType := range c.TypeLine.Types {
			words = append(words, "<word-list-type>"+cardType.String()+"</word-list-type>")
		}
		typeKey := "super type"
		if game == GameVanguard {
			typeKey = "type"
		}
		push(typeKey, strings.Join(words, " "))
		var subs []string
		for _, subtype := range c.TypeLine.Subtypes {
			tag := "word-list-" + subtype.Category.String()
			subs = append(subs, fmt.Sprintf("<%s>%s</%s>", tag, subtype.Name, tag))
		}
		push("sub type", strings.Join(subs, " "))
	}
	// rarity
	if game != GameVanguard {
		push("rarity", rarityValues[c.Rarity])
	}
	// rule text
	if len(c.Abilities) > 0 {
		push("rule text", strings.Join(AbilityLines(c.Abilities), "\n"))
	}
	// P/T, loyalty/stability, hand/life modifier
	switch game {
	case GameMagic:
		if c.TypeLine.Contains(card.TypePlaneswalker) {
			if c.Loyalty != "" {
				push("loyalty", c.Loyalty)
			}
		} else if c.PT != nil {
			push("power", c.PT.Power)
			push("toughness", c.PT.Toughness)
		} else if c.Stability != "" {
			push("power", c.Stability)
		} else if c.Vanguard != nil {
			push("power", c.Vanguard.Hand)
			push("toughness", c.Vanguard.Life)
		}
	case GameArchenemy:
	case GameVanguard:
		if c.Vanguard != nil {
			push("handmod", c.Vanguard.Hand)
			push("lifemod", c.Vanguard.Life)
		}
	}
	// secondary face, spliced directly after the primary face's fields
	if game == GameMagic && !c.Alt && c.OtherFace != nil {
		switch c.Layout {
		case card.LayoutSplit, card.LayoutFlip, card.LayoutDoubleFaced, card.LayoutMeld:
			doc.Merge(cardDocument(c.OtherFace, game))
		case card.LayoutAdventure:
			// waiting on the adventurer template
		}
	}
	// stylesheet
	if !c.Alt {
		if style := stylesheet(c, game); style != "" {
			doc.Push("stylesheet", Text(style))
		}
	}
	return doc
}

// stylesheet picks the per-card stylesheet override, or "" for the
// set default.
func stylesheet(c *card.Card, game Game) string {
	if game != GameMagic {
		return ""
	}
	switch c.Layout {
	case card.LayoutNormal:
		switch {
		case c.TypeLine.Contains(card.TypePlane) || c.TypeLine.Contains(card.TypePhenomenon):
			return "m15-mainframe-planes"
		case c.TypeLine.Contains(card.TypePlaneswalker):
			return "m15-mainframe-planeswalker"
		case c.IsLeveler():
			return "m15-leveler"
		case c.TypeLine.Contains(card.TypeConspiracy):
			return "m15-ttk-conspiracy"
		}
	case card.LayoutSplit:
		if c.OtherFace != nil && c.OtherFace.HasKeyword("aftermath") {
			return "m15-aftermath"
		}
		return "m15-split-fusable"
	case card.LayoutFlip:
		return "m15-flip"
	case card.LayoutDoubleFaced, card.LayoutMeld:
		return "m15-mainframe-dfc"
	case card.LayoutAdventure:
		// waiting on the adventurer stylesheet
	}
	return ""
}
