package database

import (
	"github.com/hellscube/cubegen/internal/card"
)

// basicLand describes one synthetic basic land
type basicLand struct {
	name    string
	image   string
	mana    string
	subtype bool
}

var basicLands = []basicLand{
	{"Plains", basicImageBase + "plains.png", "{W}", true},
	{"Island", basicImageBase + "island.png", "{U}", true},
	{"Swamp", basicImageBase + "swamp.png", "{B}", true},
	{"Mountain", basicImageBase + "mountain.png", "{R}", true},
	{"Forest", basicImageBase + "forest.png", "{G}", true},
	{"Wastes", basicImageBase + "wastes.png", "{C}", false},
}

const (
	basicImageBase = "https://raw.githubusercontent.com/bones-bones/hellfall/main/public/basics/"
	basicCreator   = "et al"
	basicSet       = "HC4"
)

// BasicLandNames lists the synthetic records Augment appends, in order.
func BasicLandNames() []string {
	names := make([]string, 0, len(basicLands))
	for _, b := range basicLands {
		names = append(names, b.name)
	}
	return names
}

func (b basicLand) card() *card.Card {
	c := &card.Card{
		Name:    card.String(b.name),
		Image:   card.String(b.image),
		Creator: card.String(basicCreator),
		Set:     card.String(basicSet),
		CMC:     card.Int(0),
	}

	face := c.Slot(0)
	face.Supertypes = card.String("Basic")
	face.CardTypes = card.String("Land")
	if b.subtype {
		face.Subtypes = card.String(b.name)
	}
	face.TextBox = card.String("({T}: Add " + b.mana + ".)")

	return c
}

// Augment appends the six basic lands. Calling it again is a no-op.
func (db *Database) Augment() {
	if db.augmented {
		return
	}
	for _, b := range basicLands {
		db.Cards = append(db.Cards, b.card())
	}
	db.augmented = true
}

// Correction patches a known-bad upstream record in place
type Correction func(c *card.Card)

// Corrections maps an exact card name to the patch applied to it.
var Corrections = map[string]Correction{
	"Spork Elemental": setFaceText(0, "Trample, haste\n"+
		"At the beginning of the next end step, sacrifice a Food or a creature. This only happens once."),
}

// setFaceText overwrites the Text Box of the n-th face. A card with fewer
// faces gets the text in slot n instead.
func setFaceText(n int, text string) Correction {
	return func(c *card.Card) {
		slot := n
		if faces := c.FaceIndices(); n < len(faces) {
			slot = faces[n]
		}
		c.Slot(slot).TextBox = card.String(text)
	}
}

// Correct applies Corrections to every matching card and returns how many
// cards were patched.
func (db *Database) Correct() int {
	patched := 0
	for _, c := range db.Cards {
		if !c.Name.Valid {
			continue
		}
		if fix, ok := Corrections[c.Name.Text]; ok {
			fix(c)
			patched++
		}
	}
	return patched
}
