package card

import (
	"fmt"
	"strings"
)

// Layout identifies how a card's faces are printed.
type Layout int

const (
	LayoutNormal Layout = iota
	LayoutSplit
	LayoutFlip
	LayoutDoubleFaced
	LayoutMeld
	LayoutAdventure
)

var layoutNames = map[string]Layout{
	"normal":      LayoutNormal,
	"split":       LayoutSplit,
	"flip":        LayoutFlip,
	"doubleFaced": LayoutDoubleFaced,
	"meld":        LayoutMeld,
	"adventure":   LayoutAdventure,
}

// ParseLayout parses a layout name as it appears in card files.
// The empty string means a normal layout.
func ParseLayout(s string) (Layout, error) {
	if s == "" {
		return LayoutNormal, nil
	}
	layout, ok := layoutNames[s]
	if !ok {
		return LayoutNormal, fmt.Errorf("unknown layout: %s", s)
	}
	return layout, nil
}

// HasSecondFace reports whether the layout prints a second face on
// the same physical card.
func (l Layout) HasSecondFace() bool {
	return l != LayoutNormal
}

// Rarity is a card's printed rarity.
type Rarity int

const (
	RarityLand Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityMythic
	RaritySpecial
)

var rarityNames = map[string]Rarity{
	"land":     RarityLand,
	"basic":    RarityLand,
	"common":   RarityCommon,
	"uncommon": RarityUncommon,
	"rare":     RarityRare,
	"mythic":   RarityMythic,
	"special":  RaritySpecial,
}

// ParseRarity parses a rarity name as it appears in card files.
func ParseRarity(s string) (Rarity, error) {
	rarity, ok := rarityNames[strings.ToLower(s)]
	if !ok {
		return RarityCommon, fmt.Errorf("unknown rarity: %s", s)
	}
	return rarity, nil
}

// Stats is a power/toughness pair. Values are strings since printed
// values include non-numbers like "*" and "1+*".
type Stats struct {
	Power     string
	Toughness string
}

// HandLife is a Vanguard hand/life modifier pair, e.g. "+1"/"-3".
type HandLife struct {
	Hand string
	Life string
}

// Card is one card face and, for multi-face layouts, a link to the
// other face. Cards are built once from input data and read-only
// afterwards.
type Card struct {
	Name      string
	ManaCost  *ManaCost
	TypeLine  TypeLine
	Rarity    Rarity
	Abilities []Ability

	// At most one of these stat groups is present.
	PT        *Stats
	Loyalty   string
	Stability string
	Vanguard  *HandLife

	Layout    Layout
	OtherFace *Card

	// Alt marks the secondary face of a split/flip/double-faced/meld
	// card. Its fields share the primary face's set entry under
	// " 2"-suffixed keys.
	Alt bool
}

// IsLeveler reports whether the card uses the Level up template.
func (c *Card) IsLeveler() bool {
	for _, ab := range c.Abilities {
		if _, ok := ab.(LevelAbility); ok {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the card has the named keyword ability.
// The comparison ignores case.
func (c *Card) HasKeyword(name string) bool {
	for _, ab := range c.Abilities {
		if kw, ok := ab.(KeywordAbility); ok && strings.EqualFold(string(kw), name) {
			return true
		}
	}
	return false
}
