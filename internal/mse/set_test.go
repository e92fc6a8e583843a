package mse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewSetMetadata(t *testing.T) {
	opts := Options{Copyright: "NOT FOR SALE", SetCode: "PROXY"}
	set := NewSet(GameMagic, opts, 2)

	wantKeys := []string{"mse version", "game", "stylesheet", "set info", "styling"}
	if got := keysOf(set.doc); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("top-level keys = %v, want %v", got, wantKeys)
	}
	if got, _ := textOf(set.doc, "mse version"); got != "0.3.8" {
		t.Errorf("mse version = %q", got)
	}
	if got, _ := textOf(set.doc, "game"); got != "magic" {
		t.Errorf("game = %q", got)
	}
	if got, _ := textOf(set.doc, "stylesheet"); got != "m15-altered" {
		t.Errorf("stylesheet = %q", got)
	}

	info, ok := subdocOf(set.doc, "set info")
	if !ok {
		t.Fatal("no set info subtree")
	}
	if got, _ := textOf(info, "copyright"); got != "NOT FOR SALE" {
		t.Errorf("copyright = %q", got)
	}
	if got, _ := textOf(info, "set code"); got != "PROXY" {
		t.Errorf("set code = %q", got)
	}
	if got, _ := textOf(info, "set language"); got != "EN" {
		t.Errorf("set language = %q", got)
	}
	if got, _ := textOf(info, "mark errors"); got != "no" {
		t.Errorf("mark errors = %q", got)
	}
	if got, _ := textOf(info, "automatic card numbers"); got != "no" {
		t.Errorf("automatic card numbers = %q", got)
	}
	if got, _ := textOf(info, "mana cost sorting"); got != "unsorted" {
		t.Errorf("mana cost sorting = %q", got)
	}
	if got, _ := textOf(info, "description"); got != "These cards were automatically imported from MTG JSON using json-to-mse." {
		t.Errorf("description = %q", got)
	}
	if _, ok := textOf(info, "border color"); ok {
		t.Error("black border emitted a border color field")
	}

	styling, ok := subdocOf(set.doc, "styling")
	if !ok {
		t.Fatal("no styling subtree")
	}
	if _, ok := subdocOf(styling, "magic-m15-altered"); !ok {
		t.Error("styling has no stylesheet placeholder")
	}
}

func TestNewSetSingularDescription(t *testing.T) {
	set := NewSet(GameMagic, Options{}, 1)
	info, _ := subdocOf(set.doc, "set info")
	if got, _ := textOf(info, "description"); got != "This card was automatically imported from MTG JSON using json-to-mse." {
		t.Errorf("description = %q", got)
	}
}

func TestNewSetGames(t *testing.T) {
	tests := []struct {
		game     Game
		gameName string
		style    string
		title    string
	}{
		{GameMagic, "magic", "m15-altered", "MTG JSON card import"},
		{GameArchenemy, "archenemy", "standard", "MTG JSON card import: Archenemy schemes"},
		{GameVanguard, "vanguard", "standard", "MTG JSON card import: Vanguard avatars"},
	}
	for _, tt := range tests {
		t.Run(tt.gameName, func(t *testing.T) {
			set := NewSet(tt.game, Options{}, 0)
			if got, _ := textOf(set.doc, "game"); got != tt.gameName {
				t.Errorf("game = %q, want %q", got, tt.gameName)
			}
			if got, _ := textOf(set.doc, "stylesheet"); got != tt.style {
				t.Errorf("stylesheet = %q, want %q", got, tt.style)
			}
			info, _ := subdocOf(set.doc, "set info")
			if got, _ := textOf(info, "title"); got != tt.title {
				t.Errorf("title = %q, want %q", got, tt.title)
			}
		})
	}
}

func TestNewSetBorderColor(t *testing.T) {
	silver, err := colorful.Hex("#c0c0c0")
	if err != nil {
		t.Fatalf("Hex: %v", err)
	}
	set := NewSet(GameMagic, Options{BorderColor: silver}, 0)
	info, _ := subdocOf(set.doc, "set info")
	if got, _ := textOf(info, "border color"); got != "rgb(192, 192, 192)" {
		t.Errorf("border color = %q, want %q", got, "rgb(192, 192, 192)")
	}
}

func TestSetEndToEnd(t *testing.T) {
	set := NewSet(GameMagic, Options{Copyright: "NOT FOR SALE", SetCode: "PROXY"}, 1)
	set.AddCard(creature(t, "Elvish Warrior"))

	cardDoc, ok := subdocOf(set.doc, "card")
	if !ok {
		t.Fatal("no card subtree")
	}
	want := []string{"name", "casting cost", "super type", "sub type", "rarity", "power", "toughness"}
	if got := keysOf(cardDoc); !reflect.DeepEqual(got, want) {
		t.Errorf("card keys = %v, want %v", got, want)
	}

	streams := readArchive(t, set.doc)
	parsed, _ := parseLevel(strings.Split(string(streams["set"]), "\r\n"), 0)
	if got := keysOf(parsed); !reflect.DeepEqual(got, []string{"mse version", "game", "stylesheet", "set info", "styling", "card"}) {
		t.Errorf("serialized top-level keys = %v", got)
	}
}

func TestAddCardOrder(t *testing.T) {
	set := NewSet(GameMagic, Options{}, 3)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		set.AddCard(creature(t, name))
	}
	var names []string
	for _, f := range set.doc.fields {
		if f.key != "card" {
			continue
		}
		if sub, ok := f.value.(*Document); ok {
			name, _ := textOf(sub, "name")
			names = append(names, name)
		}
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Beta", "Gamma"}) {
		t.Errorf("card order = %v", names)
	}
}
