package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardsmith/json-to-mse/internal/card"
	"github.com/cardsmith/json-to-mse/internal/config"
	"github.com/cardsmith/json-to-mse/internal/mse"
)

// RootCmd represents the base command. The tool is single-purpose, so
// the conversion runs directly on the root command.
var RootCmd = &cobra.Command{
	Use:   "json-to-mse [card file]...",
	Short: "Convert card data to Magic Set Editor set files",
	Long: `json-to-mse converts card JSON files into set files for Magic Set Editor.
The set file is a zip archive; by default it is written to standard output,
so redirect it or pass --output.

Scheme and Vanguard cards can additionally be written to their own sub-sets
using the Archenemy and Vanguard game templates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	RootCmd.Flags().StringP("output", "o", "", "write the set file to this path instead of standard output")
	RootCmd.Flags().String("schemes-output", "", "also write Archenemy scheme cards to this set file")
	RootCmd.Flags().String("vanguards-output", "", "also write Vanguard avatar cards to this set file")
	RootCmd.Flags().String("copyright", "", "copyright line for the set")
	RootCmd.Flags().String("set-code", "", "set code for the set")
	RootCmd.Flags().String("border-color", "", "border color as a hex color, e.g. #c0c0c0")
	RootCmd.Flags().Bool("auto-card-numbers", false, "let the editor number cards automatically")
	RootCmd.Flags().BoolP("verbose", "v", false, "print progress to standard error")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("copyright") {
		cfg.Copyright, _ = flags.GetString("copyright")
	}
	if flags.Changed("set-code") {
		cfg.SetCode, _ = flags.GetString("set-code")
	}
	if flags.Changed("border-color") {
		cfg.BorderColor, _ = flags.GetString("border-color")
	}
	if flags.Changed("auto-card-numbers") {
		cfg.AutoCardNumbers, _ = flags.GetBool("auto-card-numbers")
	}
	verbose, _ := flags.GetBool("verbose")

	borderColor, err := colorful.Hex(cfg.BorderColor)
	if err != nil {
		return fmt.Errorf("invalid border color %q: %v", cfg.BorderColor, err)
	}
	opts := mse.Options{
		Copyright:       cfg.Copyright,
		SetCode:         cfg.SetCode,
		AutoCardNumbers: cfg.AutoCardNumbers,
		BorderColor:     borderColor,
	}

	var cards []*card.Card
	for _, path := range args {
		loaded, err := card.LoadFile(path)
		if err != nil {
			return err
		}
		cards = append(cards, loaded...)
	}
	if verbose {
		progress("loaded %d cards from %d files", len(cards), len(args))
	}

	set := mse.NewSet(mse.GameMagic, opts, len(cards))
	for _, c := range cards {
		set.AddCard(c)
	}
	output, _ := flags.GetString("output")
	if err := writeSet(set, output); err != nil {
		return err
	}
	if verbose {
		progress("wrote %d cards to %s", len(cards), describeOutput(output))
	}

	if path, _ := flags.GetString("schemes-output"); path != "" {
		schemes := filterCards(cards, card.TypeScheme)
		set := mse.NewSet(mse.GameArchenemy, opts, len(schemes))
		for _, c := range schemes {
			set.AddCard(c)
		}
		if err := writeSet(set, path); err != nil {
			return err
		}
		if verbose {
			progress("wrote %d schemes to %s", len(schemes), describeOutput(path))
		}
	}

	if path, _ := flags.GetString("vanguards-output"); path != "" {
		vanguards := filterCards(cards, card.TypeVanguard)
		set := mse.NewSet(mse.GameVanguard, opts, len(vanguards))
		for _, c := range vanguards {
			set.AddCard(c)
		}
		if err := writeSet(set, path); err != nil {
			return err
		}
		if verbose {
			progress("wrote %d vanguards to %s", len(vanguards), describeOutput(path))
		}
	}

	return nil
}

// filterCards returns the cards whose type line includes the given
// card type, in input order.
func filterCards(cards []*card.Card, cardType card.CardType) []*card.Card {
	var matched []*card.Card
	for _, c := range cards {
		if c.TypeLine.Contains(cardType) {
			matched = append(matched, c)
		}
	}
	return matched
}

// writeSet writes the set archive to the given path. An empty path or
// "=" means standard output, which is refused when it is a terminal
// since the archive is binary.
func writeSet(set *mse.Set, path string) error {
	if path == "" || path == "=" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("standard output is a terminal; redirect it or use --output")
		}
		return set.WriteTo(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", path, err)
	}
	if err := set.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	return f.Close()
}

func describeOutput(path string) string {
	if path == "" || path == "=" {
		return "standard output"
	}
	return path
}

func progress(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.GreenString(format, args...))
}
