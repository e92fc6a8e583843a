package card

import (
	"fmt"
	"strings"
)

// CardType is one of the card types that can appear on a type line.
type CardType int

const (
	TypeArtifact CardType = iota
	TypeConspiracy
	TypeCreature
	TypeEnchantment
	TypeInstant
	TypeLand
	TypePhenomenon
	TypePlane
	TypePlaneswalker
	TypeScheme
	TypeSorcery
	TypeTribal
	TypeVanguard
)

var cardTypeNames = map[CardType]string{
	TypeArtifact:     "Artifact",
	TypeConspiracy:   "Conspiracy",
	TypeCreature:     "Creature",
	TypeEnchantment:  "Enchantment",
	TypeInstant:      "Instant",
	TypeLand:         "Land",
	TypePhenomenon:   "Phenomenon",
	TypePlane:        "Plane",
	TypePlaneswalker: "Planeswalker",
	TypeScheme:       "Scheme",
	TypeSorcery:      "Sorcery",
	TypeTribal:       "Tribal",
	TypeVanguard:     "Vanguard",
}

func (t CardType) String() string {
	return cardTypeNames[t]
}

var supertypeNames = map[string]bool{
	"Basic":     true,
	"Elite":     true,
	"Host":      true,
	"Legendary": true,
	"Ongoing":   true,
	"Snow":      true,
	"World":     true,
}

// SubtypeCategory is the word-list vocabulary a subtype belongs to.
type SubtypeCategory int

const (
	CategoryArtifact SubtypeCategory = iota
	CategoryEnchantment
	CategoryLand
	CategoryPlaneswalker
	CategorySpell
	CategoryRace
	CategoryPlane
)

var categoryNames = map[SubtypeCategory]string{
	CategoryArtifact:     "artifact",
	CategoryEnchantment:  "enchantment",
	CategoryLand:         "land",
	CategoryPlaneswalker: "planeswalker",
	CategorySpell:        "spell",
	CategoryRace:         "race",
	CategoryPlane:        "plane",
}

func (c SubtypeCategory) String() string {
	return categoryNames[c]
}

// Subtype is one subtype word together with its vocabulary.
type Subtype struct {
	Category SubtypeCategory
	Name     string
}

// TypeLine is a card's parsed type line. Word order is the printed
// order.
type TypeLine struct {
	Supertypes []string
	Types      []CardType
	Subtypes   []Subtype
}

// Contains reports whether the type line includes the given card type.
func (t TypeLine) Contains(ct CardType) bool {
	for _, have := range t.Types {
		if have == ct {
			return true
		}
	}
	return false
}

// String reassembles the printed type line.
func (t TypeLine) String() string {
	var words []string
	words = append(words, t.Supertypes...)
	for _, ct := range t.Types {
		words = append(words, ct.String())
	}
	left := strings.Join(words, " ")
	if len(t.Subtypes) == 0 {
		return left
	}
	subs := make([]string, len(t.Subtypes))
	for i, sub := range t.Subtypes {
		subs[i] = sub.Name
	}
	return left + " — " + strings.Join(subs, " ")
}

// ParseTypeLine parses a printed type line like
// "Legendary Creature — Human Wizard". Both the em dash and a plain
// hyphen are accepted as the subtype separator.
func ParseTypeLine(s string) (TypeLine, error) {
	var line TypeLine

	left, right := s, ""
	for _, sep := range []string{" — ", " - "} {
		if i := strings.Index(s, sep); i >= 0 {
			left, right = s[:i], s[i+len(sep):]
			break
		}
	}

	byName := make(map[string]CardType, len(cardTypeNames))
	for ct, name := range cardTypeNames {
		byName[name] = ct
	}
	for _, word := range strings.Fields(left) {
		if supertypeNames[word] {
			line.Supertypes = append(line.Supertypes, word)
			continue
		}
		ct, ok := byName[word]
		if !ok {
			return line, fmt.Errorf("unknown card type: %s", word)
		}
		line.Types = append(line.Types, ct)
	}

	category := line.subtypeCategory()
	for _, word := range strings.Fields(right) {
		line.Subtypes = append(line.Subtypes, Subtype{Category: category, Name: word})
	}
	return line, nil
}

// subtypeCategory picks the word-list vocabulary for the line's
// subtypes from the card types present. Creature and Tribal dominate
// since their subtypes are creature races regardless of other types.
func (t TypeLine) subtypeCategory() SubtypeCategory {
	switch {
	case t.Contains(TypeCreature) || t.Contains(TypeTribal):
		return CategoryRace
	case t.Contains(TypePlaneswalker):
		return CategoryPlaneswalker
	case t.Contains(TypeInstant) || t.Contains(TypeSorcery):
		return CategorySpell
	case t.Contains(TypeArtifact):
		return CategoryArtifact
	case t.Contains(TypeEnchantment):
		return CategoryEnchantment
	case t.Contains(TypeLand):
		return CategoryLand
	case t.Contains(TypePlane) || t.Contains(TypePhenomenon):
		return CategoryPlane
	}
	return CategoryRace
}
