package card

import "strings"

// Ability is one ability printed on a card. The concrete types below
// are the only implementations.
type Ability interface {
	isAbility()
}

// KeywordAbility is a keyword like "Flying". Consecutive keywords are
// rendered merged on one rule-text line.
type KeywordAbility string

// OtherAbility is freeform rule text rendered verbatim.
type OtherAbility string

// ModalAbility is a "Choose one —" style ability with bulleted modes.
type ModalAbility struct {
	Choose string
	Modes  []string
}

// ChapterAbility is a saga chapter covering the numbered chapters
// From through To.
type ChapterAbility struct {
	From int
	To   int
	Text string
}

// LevelAbility is one tier of a Level up card. Max is nil for
// open-ended tiers ("LEVEL 8+"). Abilities holds the tier's own
// abilities, if any.
type LevelAbility struct {
	Min       int
	Max       *int
	Power     string
	Toughness string
	Abilities []Ability
}

func (KeywordAbility) isAbility() {}
func (OtherAbility) isAbility()   {}
func (ModalAbility) isAbility()   {}
func (ChapterAbility) isAbility() {}
func (LevelAbility) isAbility()   {}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func roman(n int) string {
	if n >= 1 && n <= len(romanNumerals) {
		return romanNumerals[n-1]
	}
	return "?"
}

// String renders the chapter in its default textual form,
// e.g. "I, II — Exile the top card of your library.".
func (a ChapterAbility) String() string {
	to := a.To
	if to < a.From {
		to = a.From
	}
	var numerals []string
	for n := a.From; n <= to; n++ {
		numerals = append(numerals, roman(n))
	}
	return strings.Join(numerals, ", ") + " — " + a.Text
}
