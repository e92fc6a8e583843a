package mse

import (
	"strconv"
	"strings"

	"github.com/cardsmith/json-to-mse/internal/card"
)

// ManaCostString encodes a mana cost as MSE's casting cost value: one
// fixed token per symbol, concatenated in printed order with no
// separator.
func ManaCostString(cost *card.ManaCost) string {
	var b strings.Builder
	for _, sym := range cost.Symbols {
		b.WriteString(manaToken(sym))
	}
	return b.String()
}

func manaToken(sym card.ManaSymbol) string {
	switch sym.Kind {
	case card.SymbolVariable:
		return "X"
	case card.SymbolGeneric:
		return strconv.Itoa(sym.Amount)
	case card.SymbolSnow:
		return "S"
	case card.SymbolColorless:
		return "C"
	case card.SymbolWhite:
		return "W"
	case card.SymbolBlue:
		return "U"
	case card.SymbolBlack:
		return "B"
	case card.SymbolRed:
		return "R"
	case card.SymbolGreen:
		return "G"
	case card.SymbolHybridWhiteBlue:
		return "W/U"
	case card.SymbolHybridBlueBlack:
		return "U/B"
	case card.SymbolHybridBlackRed:
		return "B/R"
	case card.SymbolHybridRedGreen:
		return "R/G"
	case card.SymbolHybridGreenWhite:
		return "G/W"
	case card.SymbolHybridWhiteBlack:
		return "W/B"
	case card.SymbolHybridBlueRed:
		return "U/R"
	case card.SymbolHybridBlackGreen:
		return "B/G"
	case card.SymbolHybridRedWhite:
		return "R/W"
	case card.SymbolHybridGreenBlue:
		return "G/U"
	case card.SymbolTwobridWhite:
		return "2/W"
	case card.SymbolTwobridBlue:
		return "2/U"
	case card.SymbolTwobridBlack:
		return "2/B"
	case card.SymbolTwobridRed:
		return "2/R"
	case card.SymbolTwobridGreen:
		return "2/G"
	case card.SymbolPhyrexianWhite:
		return "H/W"
	case card.SymbolPhyrexianBlue:
		return "H/U"
	case card.SymbolPhyrexianBlack:
		return "H/B"
	case card.SymbolPhyrexianRed:
		return "H/R"
	case card.SymbolPhyrexianGreen:
		return "H/G"
	}
	return ""
}
