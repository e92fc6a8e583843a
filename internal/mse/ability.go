package mse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cardsmith/json-to-mse/internal/card"
)

// AbilityLines formats abilities as the card's rule-text lines.
// Consecutive keyword abilities merge onto one comma-separated line,
// flushed before the next non-keyword ability (and at the end).
func AbilityLines(abilities []card.Ability) []string {
	var lines []string
	var keywords []string

	flush := func() {
		if len(keywords) > 0 {
			lines = append(lines, upperFirst(strings.Join(keywords, ", ")))
			keywords = nil
		}
	}

	for _, ab := range abilities {
		if _, ok := ab.(card.KeywordAbility); !ok {
			flush()
		}
		switch a := ab.(type) {
		case card.KeywordAbility:
			keywords = append(keywords, string(a))
		case card.OtherAbility:
			lines = append(lines, string(a))
		case card.ModalAbility:
			lines = append(lines, a.Choose)
			for _, mode := range a.Modes {
				lines = append(lines, "• "+mode)
			}
		case card.ChapterAbility:
			lines = append(lines, a.String())
		case card.LevelAbility:
			tag := fmt.Sprintf("{LEVEL %d+}", a.Min)
			if a.Max != nil {
				tag = fmt.Sprintf("{LEVEL %d-%d}", a.Min, *a.Max)
			}
			if len(a.Abilities) == 0 {
				lines = append(lines, fmt.Sprintf("%s %s/%s", tag, a.Power, a.Toughness))
			} else {
				lines = append(lines, tag)
				lines = append(lines, AbilityLines(a.Abilities)...)
				lines = append(lines, fmt.Sprintf("%s/%s", a.Power, a.Toughness))
			}
		}
	}
	flush()
	return lines
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
