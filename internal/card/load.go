package card

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// cardFile is the top-level shape of a card JSON file.
type cardFile struct {
	Cards []cardJSON `json:"cards"`
}

type cardJSON struct {
	Name      string        `json:"name"`
	ManaCost  string        `json:"manaCost,omitempty"`
	TypeLine  string        `json:"typeLine"`
	Rarity    string        `json:"rarity,omitempty"`
	Text      []abilityJSON `json:"text,omitempty"`
	Power     string        `json:"power,omitempty"`
	Toughness string        `json:"toughness,omitempty"`
	Loyalty   string        `json:"loyalty,omitempty"`
	Stability string        `json:"stability,omitempty"`
	Hand      string        `json:"hand,omitempty"`
	Life      string        `json:"life,omitempty"`
	Layout    string        `json:"layout,omitempty"`
	OtherFace *cardJSON     `json:"otherFace,omitempty"`
}

// abilityJSON is one entry of a card's "text" array. A plain string is
// freeform rule text; objects select one of the structured forms.
type abilityJSON struct {
	other   string
	Keyword string       `json:"keyword,omitempty"`
	Choose  string       `json:"choose,omitempty"`
	Modes   []string     `json:"modes,omitempty"`
	Chapter *chapterJSON `json:"chapter,omitempty"`
	Level   *levelJSON   `json:"level,omitempty"`
}

type chapterJSON struct {
	From int    `json:"from"`
	To   int    `json:"to,omitempty"`
	Text string `json:"text"`
}

type levelJSON struct {
	Min       int           `json:"min"`
	Max       *int          `json:"max,omitempty"`
	Power     string        `json:"power"`
	Toughness string        `json:"toughness"`
	Text      []abilityJSON `json:"text,omitempty"`
}

func (a *abilityJSON) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.other)
	}
	type raw abilityJSON
	return json.Unmarshal(data, (*raw)(a))
}

func (a abilityJSON) toAbility() (Ability, error) {
	switch {
	case a.other != "":
		return OtherAbility(a.other), nil
	case a.Keyword != "":
		return KeywordAbility(a.Keyword), nil
	case a.Choose != "":
		return ModalAbility{Choose: a.Choose, Modes: a.Modes}, nil
	case a.Chapter != nil:
		return ChapterAbility{From: a.Chapter.From, To: a.Chapter.To, Text: a.Chapter.Text}, nil
	case a.Level != nil:
		abilities, err := toAbilities(a.Level.Text)
		if err != nil {
			return nil, err
		}
		return LevelAbility{
			Min:       a.Level.Min,
			Max:       a.Level.Max,
			Power:     a.Level.Power,
			Toughness: a.Level.Toughness,
			Abilities: abilities,
		}, nil
	}
	return nil, fmt.Errorf("empty ability entry")
}

func toAbilities(entries []abilityJSON) ([]Ability, error) {
	var abilities []Ability
	for _, entry := range entries {
		ab, err := entry.toAbility()
		if err != nil {
			return nil, err
		}
		abilities = append(abilities, ab)
	}
	return abilities, nil
}

func (cj *cardJSON) toCard(alt bool) (*Card, error) {
	c := &Card{Name: cj.Name, Alt: alt}

	var err error
	if c.ManaCost, err = ParseManaCost(cj.ManaCost); err != nil {
		return nil, fmt.Errorf("card %q: %v", cj.Name, err)
	}
	if c.TypeLine, err = ParseTypeLine(cj.TypeLine); err != nil {
		return nil, fmt.Errorf("card %q: %v", cj.Name, err)
	}
	if cj.Rarity != "" {
		if c.Rarity, err = ParseRarity(cj.Rarity); err != nil {
			return nil, fmt.Errorf("card %q: %v", cj.Name, err)
		}
	}
	if c.Abilities, err = toAbilities(cj.Text); err != nil {
		return nil, fmt.Errorf("card %q: %v", cj.Name, err)
	}
	if cj.Power != "" || cj.Toughness != "" {
		c.PT = &Stats{Power: cj.Power, Toughness: cj.Toughness}
	}
	c.Loyalty = cj.Loyalty
	c.Stability = cj.Stability
	if cj.Hand != "" || cj.Life != "" {
		c.Vanguard = &HandLife{Hand: cj.Hand, Life: cj.Life}
	}
	if c.Layout, err = ParseLayout(cj.Layout); err != nil {
		return nil, fmt.Errorf("card %q: %v", cj.Name, err)
	}
	if cj.OtherFace != nil {
		// Adventure faces are not merged into the primary face's
		// entry, so they are not marked as alternate faces.
		faceAlt := c.Layout.HasSecondFace() && c.Layout != LayoutAdventure
		if c.OtherFace, err = cj.OtherFace.toCard(faceAlt); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load reads a card JSON file from r and returns the cards in file
// order.
func Load(r io.Reader) ([]*Card, error) {
	var file cardFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("error parsing card file: %v", err)
	}
	cards := make([]*Card, 0, len(file.Cards))
	for i := range file.Cards {
		c, err := file.Cards[i].toCard(false)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// LoadFile reads the card JSON file at path.
func LoadFile(path string) ([]*Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cards, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cards, nil
}
