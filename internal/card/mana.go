package card

import (
	"fmt"
	"strconv"
	"strings"
)

// SymbolKind enumerates the mana symbols a cost can contain.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota // {X}
	SymbolGeneric                    // {0}, {1}, {2}, ...
	SymbolSnow
	SymbolColorless
	SymbolWhite
	SymbolBlue
	SymbolBlack
	SymbolRed
	SymbolGreen
	SymbolHybridWhiteBlue
	SymbolHybridBlueBlack
	SymbolHybridBlackRed
	SymbolHybridRedGreen
	SymbolHybridGreenWhite
	SymbolHybridWhiteBlack
	SymbolHybridBlueRed
	SymbolHybridBlackGreen
	SymbolHybridRedWhite
	SymbolHybridGreenBlue
	SymbolTwobridWhite
	SymbolTwobridBlue
	SymbolTwobridBlack
	SymbolTwobridRed
	SymbolTwobridGreen
	SymbolPhyrexianWhite
	SymbolPhyrexianBlue
	SymbolPhyrexianBlack
	SymbolPhyrexianRed
	SymbolPhyrexianGreen
)

// ManaSymbol is one symbol in a mana cost. Amount is only meaningful
// for generic symbols.
type ManaSymbol struct {
	Kind   SymbolKind
	Amount int
}

// ManaCost is an ordered sequence of mana symbols in printed order.
type ManaCost struct {
	Symbols []ManaSymbol
}

var symbolTokens = map[string]SymbolKind{
	"X":   SymbolVariable,
	"S":   SymbolSnow,
	"C":   SymbolColorless,
	"W":   SymbolWhite,
	"U":   SymbolBlue,
	"B":   SymbolBlack,
	"R":   SymbolRed,
	"G":   SymbolGreen,
	"W/U": SymbolHybridWhiteBlue,
	"U/B": SymbolHybridBlueBlack,
	"B/R": SymbolHybridBlackRed,
	"R/G": SymbolHybridRedGreen,
	"G/W": SymbolHybridGreenWhite,
	"W/B": SymbolHybridWhiteBlack,
	"U/R": SymbolHybridBlueRed,
	"B/G": SymbolHybridBlackGreen,
	"R/W": SymbolHybridRedWhite,
	"G/U": SymbolHybridGreenBlue,
	"2/W": SymbolTwobridWhite,
	"2/U": SymbolTwobridBlue,
	"2/B": SymbolTwobridBlack,
	"2/R": SymbolTwobridRed,
	"2/G": SymbolTwobridGreen,
	// Phyrexian symbols appear as both {W/P} (MTG JSON) and {H/W}.
	"W/P": SymbolPhyrexianWhite,
	"U/P": SymbolPhyrexianBlue,
	"B/P": SymbolPhyrexianBlack,
	"R/P": SymbolPhyrexianRed,
	"G/P": SymbolPhyrexianGreen,
	"H/W": SymbolPhyrexianWhite,
	"H/U": SymbolPhyrexianBlue,
	"H/B": SymbolPhyrexianBlack,
	"H/R": SymbolPhyrexianRed,
	"H/G": SymbolPhyrexianGreen,
}

// ParseManaCost parses a printed mana cost like "{2}{W}{W/U}". The
// empty string yields a nil cost, meaning the card has none.
func ParseManaCost(s string) (*ManaCost, error) {
	if s == "" {
		return nil, nil
	}
	cost := &ManaCost{}
	rest := s
	for len(rest) > 0 {
		if rest[0] != '{' {
			return nil, fmt.Errorf("invalid mana cost %q: expected '{' at %q", s, rest)
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("invalid mana cost %q: unterminated symbol", s)
		}
		token := rest[1:end]
		rest = rest[end+1:]

		if kind, ok := symbolTokens[token]; ok {
			cost.Symbols = append(cost.Symbols, ManaSymbol{Kind: kind})
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid mana cost %q: unknown symbol {%s}", s, token)
		}
		cost.Symbols = append(cost.Symbols, ManaSymbol{Kind: SymbolGeneric, Amount: n})
	}
	return cost, nil
}
