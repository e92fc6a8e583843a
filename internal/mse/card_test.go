package mse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cardsmith/json-to-mse/internal/card"
)

func mustTypeLine(t *testing.T, s string) card.TypeLine {
	t.Helper()
	line, err := card.ParseTypeLine(s)
	if err != nil {
		t.Fatalf("ParseTypeLine(%q): %v", s, err)
	}
	return line
}

func creature(t *testing.T, name string) *card.Card {
	t.Helper()
	cost, err := card.ParseManaCost("{1}{G}")
	if err != nil {
		t.Fatalf("ParseManaCost: %v", err)
	}
	return &card.Card{
		Name:     name,
		ManaCost: cost,
		TypeLine: mustTypeLine(t, "Creature — Elf Warrior"),
		Rarity:   card.RarityCommon,
		PT:       &card.Stats{Power: "2", Toughness: "2"},
	}
}

func TestCardDocumentFieldOrder(t *testing.T) {
	doc := cardDocument(creature(t, "Elvish Warrior"), GameMagic)

	want := []string{"name", "casting cost", "super type", "sub type", "rarity", "power", "toughness"}
	if got := keysOf(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
	if _, ok := textOf(doc, "loyalty"); ok {
		t.Error("creature card has a loyalty field")
	}
	if got, _ := textOf(doc, "rarity"); got != "common" {
		t.Errorf("rarity = %q, want %q", got, "common")
	}
	if got, _ := textOf(doc, "super type"); got != "<word-list-type>Creature</word-list-type>" {
		t.Errorf("super type = %q", got)
	}
	if got, _ := textOf(doc, "sub type"); got != "<word-list-race>Elf</word-list-race> <word-list-race>Warrior</word-list-race>" {
		t.Errorf("sub type = %q", got)
	}
}

func TestCardDocumentAltSuffix(t *testing.T) {
	c := creature(t, "Wildheart Invoker")
	c.Alt = true
	c.Abilities = []card.Ability{card.KeywordAbility("Reach")}

	doc := cardDocument(c, GameMagic)
	for _, key := range keysOf(doc) {
		if !strings.HasSuffix(key, " 2") {
			t.Errorf("alternate face emitted unsuffixed key %q", key)
		}
	}
	if _, ok := textOf(doc, "name"); ok {
		t.Error("alternate face emitted both name and name 2")
	}
	if _, ok := textOf(doc, "stylesheet"); ok {
		t.Error("alternate face emitted a stylesheet")
	}
}

func TestCardDocumentSecondaryFaceSplice(t *testing.T) {
	back := creature(t, "Ravager of the Fells")
	back.Alt = true
	front := creature(t, "Huntmaster of the Fells")
	front.Layout = card.LayoutDoubleFaced
	front.OtherFace = back

	doc := cardDocument(front, GameMagic)
	keys := keysOf(doc)

	name := -1
	name2 := -1
	style := -1
	for i, key := range keys {
		switch key {
		case "name":
			name = i
		case "name 2":
			name2 = i
		case "stylesheet":
			style = i
		}
	}
	if name < 0 || name2 < 0 {
		t.Fatalf("missing face names in keys %v", keys)
	}
	if name2 < name {
		t.Errorf("secondary face fields precede primary face fields: %v", keys)
	}
	if style != len(keys)-1 {
		t.Errorf("stylesheet is not the last field: %v", keys)
	}
	if got, _ := textOf(doc, "stylesheet"); got != "m15-mainframe-dfc" {
		t.Errorf("stylesheet = %q, want %q", got, "m15-mainframe-dfc")
	}
}

func TestStylesheetSelection(t *testing.T) {
	aftermathBack := creature(t, "To Hell")
	aftermathBack.Alt = true
	aftermathBack.Abilities = []card.Ability{card.KeywordAbility("Aftermath")}
	plainBack := creature(t, "Cower")
	plainBack.Alt = true

	tests := []struct {
		name  string
		build func() *card.Card
		want  string
	}{
		{
			name:  "plain creature has no override",
			build: func() *card.Card { return creature(t, "Grizzly Bears") },
			want:  "",
		},
		{
			name: "plane",
			build: func() *card.Card {
				c := creature(t, "Academy at Tolaria West")
				c.TypeLine = mustTypeLine(t, "Plane — Dominaria")
				return c
			},
			want: "m15-mainframe-planes",
		},
		{
			name: "phenomenon",
			build: func() *card.Card {
				c := creature(t, "Reality Shaping")
				c.TypeLine = mustTypeLine(t, "Phenomenon")
				return c
			},
			want: "m15-mainframe-planes",
		},
		{
			name: "planeswalker",
			build: func() *card.Card {
				c := creature(t, "Jace Beleren")
				c.TypeLine = mustTypeLine(t, "Legendary Planeswalker — Jace")
				return c
			},
			want: "m15-mainframe-planeswalker",
		},
		{
			name: "leveler",
			build: func() *card.Card {
				c := creature(t, "Kargan Dragonlord")
				c.Abilities = []card.Ability{
					card.LevelAbility{Min: 0, Max: intPtr(3), Power: "2", Toughness: "2"},
				}
				return c
			},
			want: "m15-leveler",
		},
		{
			name: "conspiracy",
			build: func() *card.Card {
				c := creature(t, "Backup Plan")
				c.TypeLine = mustTypeLine(t, "Conspiracy")
				return c
			},
			want: "m15-ttk-conspiracy",
		},
		{
			name: "split with aftermath",
			build: func() *card.Card {
				c := creature(t, "Cut")
				c.Layout = card.LayoutSplit
				c.OtherFace = aftermathBack
				return c
			},
			want: "m15-aftermath",
		},
		{
			name: "split without aftermath",
			build: func() *card.Card {
				c := creature(t, "Fire")
				c.Layout = card.LayoutSplit
				c.OtherFace = plainBack
				return c
			},
			want: "m15-split-fusable",
		},
		{
			name: "flip",
			build: func() *card.Card {
				c := creature(t, "Akki Lavarunner")
				c.Layout = card.LayoutFlip
				c.OtherFace = plainBack
				return c
			},
			want: "m15-flip",
		},
		{
			name: "meld",
			build: func() *card.Card {
				c := creature(t, "Gisela, the Broken Blade")
				c.Layout = card.LayoutMeld
				c.OtherFace = plainBack
				return c
			},
			want: "m15-mainframe-dfc",
		},
		{
			name: "adventure has no override",
			build: func() *card.Card {
				c := creature(t, "Murderous Rider")
				c.Layout = card.LayoutAdventure
				return c
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stylesheet(tt.build(), GameMagic); got != tt.want {
				t.Errorf("stylesheet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylesheetOtherGames(t *testing.T) {
	c := creature(t, "Behold the Power of Destruction")
	c.TypeLine = mustTypeLine(t, "Scheme")
	if got := stylesheet(c, GameArchenemy); got != "" {
		t.Errorf("archenemy stylesheet = %q, want none", got)
	}
	if got := stylesheet(c, GameVanguard); got != "" {
		t.Errorf("vanguard stylesheet = %q, want none", got)
	}
}

func TestCardDocumentStats(t *testing.T) {
	t.Run("planeswalker loyalty", func(t *testing.T) {
		c := creature(t, "Jace Beleren")
		c.TypeLine = mustTypeLine(t, "Legendary Planeswalker — Jace")
		c.PT = nil
		c.Loyalty = "3"
		doc := cardDocument(c, GameMagic)
		if got, _ := textOf(doc, "loyalty"); got != "3" {
			t.Errorf("loyalty = %q, want %q", got, "3")
		}
		if _, ok := textOf(doc, "power"); ok {
			t.Error("planeswalker emitted a power field")
		}
	})

	t.Run("stability as power", func(t *testing.T) {
		c := creature(t, "Chaotic Aether")
		c.PT = nil
		c.Stability = "5"
		doc := cardDocument(c, GameMagic)
		if got, _ := textOf(doc, "power"); got != "5" {
			t.Errorf("power = %q, want %q", got, "5")
		}
		if _, ok := textOf(doc, "toughness"); ok {
			t.Error("stability emitted a toughness field")
		}
	})

	t.Run("vanguard modifiers as pt in magic", func(t *testing.T) {
		c := creature(t, "Gix")
		c.PT = nil
		c.Vanguard = &card.HandLife{Hand: "-1", Life: "+10"}
		doc := cardDocument(c, GameMagic)
		if got, _ := textOf(doc, "power"); got != "-1" {
			t.Errorf("power = %q, want %q", got, "-1")
		}
		if got, _ := textOf(doc, "toughness"); got != "+10" {
			t.Errorf("toughness = %q, want %q", got, "+10")
		}
	})

	t.Run("vanguard game uses handmod and lifemod", func(t *testing.T) {
		c := creature(t, "Gix")
		c.TypeLine = mustTypeLine(t, "Vanguard")
		c.PT = nil
		c.Vanguard = &card.HandLife{Hand: "-1", Life: "+10"}
		doc := cardDocument(c, GameVanguard)
		if got, _ := textOf(doc, "handmod"); got != "-1" {
			t.Errorf("handmod = %q, want %q", got, "-1")
		}
		if got, _ := textOf(doc, "lifemod"); got != "+10" {
			t.Errorf("lifemod = %q, want %q", got, "+10")
		}
		if _, ok := textOf(doc, "rarity"); ok {
			t.Error("vanguard card emitted a rarity")
		}
		if got, _ := textOf(doc, "type"); !strings.Contains(got, "Vanguard") {
			t.Errorf("type = %q, want the card types", got)
		}
	})

	t.Run("archenemy uses flat type line", func(t *testing.T) {
		c := creature(t, "Behold the Power of Destruction")
		c.TypeLine = mustTypeLine(t, "Scheme")
		c.PT = nil
		doc := cardDocument(c, GameArchenemy)
		if got, _ := textOf(doc, "type"); got != "Scheme" {
			t.Errorf("type = %q, want %q", got, "Scheme")
		}
		if _, ok := textOf(doc, "super type"); ok {
			t.Error("archenemy card emitted a super type field")
		}
		if _, ok := textOf(doc, "sub type"); ok {
			t.Error("archenemy card emitted a sub type field")
		}
	})
}

func TestCardDocumentRuleText(t *testing.T) {
	c := creature(t, "Wind Drake")
	c.Abilities = []card.Ability{
		card.KeywordAbility("Flying"),
		card.OtherAbility("When it enters, draw a card."),
	}
	doc := cardDocument(c, GameMagic)
	want := "Flying\nWhen it enters, draw a card."
	if got, _ := textOf(doc, "rule text"); got != want {
		t.Errorf("rule text = %q, want %q", got, want)
	}

	c.Abilities = nil
	doc = cardDocument(c, GameMagic)
	if _, ok := textOf(doc, "rule text"); ok {
		t.Error("card without abilities emitted rule text")
	}
}

func TestCardDocumentNoManaCost(t *testing.T) {
	c := creature(t, "Ornithopter")
	c.ManaCost = nil
	doc := cardDocument(c, GameMagic)
	if _, ok := textOf(doc, "casting cost"); ok {
		t.Error("card without a mana cost emitted casting cost")
	}
}

func TestCardDocumentAdventureSkipsFace(t *testing.T) {
	face := creature(t, "Swift End")
	front := creature(t, "Murderous Rider")
	front.Layout = card.LayoutAdventure
	front.OtherFace = face

	doc := cardDocument(front, GameMagic)
	for _, key := range keysOf(doc) {
		if strings.HasSuffix(key, " 2") {
			t.Errorf("adventure face emitted field %q", key)
		}
	}
}
