package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardsmith/json-to-mse/internal/card"
	"github.com/cardsmith/json-to-mse/internal/mse"
)

var showCmd = &cobra.Command{
	Use:   "show [card file] [card name]",
	Short: "Display a card from a card file",
	Long: `Show prints one card from a card JSON file the way it will read in the
set file: merged keyword lines, bulleted modes, level tiers. With no card
name the first card in the file is shown.

Examples:
  json-to-mse show cards.json
  json-to-mse show cards.json "Akki Lavarunner"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.LoadFile(args[0])
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			return fmt.Errorf("no cards in %s", args[0])
		}

		c := cards[0]
		if len(args) == 2 {
			c = nil
			for _, candidate := range cards {
				if strings.EqualFold(candidate.Name, args[1]) {
					c = candidate
					break
				}
			}
			if c == nil {
				return fmt.Errorf("card not found: %s", args[1])
			}
		}

		displayCard(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func displayCard(c *card.Card) {
	name := color.New(color.Bold).Sprint(c.Name)
	if c.ManaCost != nil {
		fmt.Printf("%s  %s\n", name, color.CyanString(mse.ManaCostString(c.ManaCost)))
	} else {
		fmt.Println(name)
	}
	fmt.Println(color.YellowString(c.TypeLine.String()))

	if len(c.Abilities) > 0 {
		fmt.Println()
		for _, line := range mse.AbilityLines(c.Abilities) {
			fmt.Println(line)
		}
	}

	switch {
	case c.PT != nil:
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprintf("%s/%s", c.PT.Power, c.PT.Toughness))
	case c.Loyalty != "":
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(c.Loyalty))
	case c.Vanguard != nil:
		fmt.Printf("\n%s\n", color.New(color.Bold).Sprintf("%s/%s", c.Vanguard.Hand, c.Vanguard.Life))
	}

	if c.OtherFace != nil {
		fmt.Println("\n//")
		fmt.Println()
		displayCard(c.OtherFace)
	}
}
