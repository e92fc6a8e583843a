package validator

import (
	"fmt"

	"github.com/cardsmith/json-to-mse/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate parses the card file and checks each card. Parse failures
// (bad JSON, unknown rarities, malformed mana costs or type lines)
// abort validation; structural problems accumulate in Results.
func (v *Validator) Validate() (ValidationResults, error) {
	cards, err := card.LoadFile(v.Path)
	if err != nil {
		return v.Results, err
	}

	for i, c := range cards {
		v.validateCard(fmt.Sprintf("cards[%d]", i), c)
	}

	return v.Results, nil
}

func (v *Validator) validateCard(where string, c *card.Card) {
	if c.Name == "" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: card has no name", where))
	}

	switch c.Layout {
	case card.LayoutNormal:
		if c.OtherFace != nil {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s (%s): normal layout card has an unused otherFace", where, c.Name))
		}
	case card.LayoutAdventure:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s (%s): adventure layout is not yet supported and will be skipped", where, c.Name))
	default:
		if c.OtherFace == nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s (%s): multi-face layout requires an otherFace", where, c.Name))
		}
	}

	if c.TypeLine.Contains(card.TypePlaneswalker) && c.Loyalty == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s (%s): planeswalker has no loyalty", where, c.Name))
	}
	if c.TypeLine.Contains(card.TypeVanguard) && c.Vanguard == nil {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s (%s): vanguard has no hand/life modifiers", where, c.Name))
	}
	if c.TypeLine.Contains(card.TypeCreature) && c.PT == nil && !c.IsLeveler() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s (%s): creature has no power/toughness", where, c.Name))
	}

	if c.OtherFace != nil {
		v.validateCard(where+".otherFace", c.OtherFace)
	}
}
