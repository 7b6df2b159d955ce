package card

import (
	"encoding/json"
	"fmt"
)

// MaxFaces is the number of face slots the card database reserves per card.
const MaxFaces = 4

// Card represents one record of the card database, possibly multi-faced
type Card struct {
	Name        Value
	Image       Value
	Creator     Value
	Set         Value
	Constructed Value
	Rulings     Value
	CMC         Value
	Colors      Value
	Tags        Value

	// Slots holds the side fields zipped by positional index. Not every
	// slot is a face, see FaceIndices.
	Slots []Face
}

// Face holds the side fields of a card at one positional index
type Face struct {
	Cost       Value
	Supertypes Value
	CardTypes  Value
	Subtypes   Value
	Power      Value
	Toughness  Value
	Loyalty    Value
	TextBox    Value
	FlavorText Value
}

// ScalarField binds a database key to its storage in a Card
type ScalarField struct {
	Key string
	Ref func(*Card) *Value
}

// SideField binds a database key to its storage in a Face
type SideField struct {
	Key string
	Ref func(*Face) *Value
}

// ScalarFields lists the card-level fields in output order.
var ScalarFields = []ScalarField{
	{"Name", func(c *Card) *Value { return &c.Name }},
	{"Image", func(c *Card) *Value { return &c.Image }},
	{"Creator", func(c *Card) *Value { return &c.Creator }},
	{"Set", func(c *Card) *Value { return &c.Set }},
	{"Constructed", func(c *Card) *Value { return &c.Constructed }},
	{"Rulings", func(c *Card) *Value { return &c.Rulings }},
	{"CMC", func(c *Card) *Value { return &c.CMC }},
	{"Color(s)", func(c *Card) *Value { return &c.Colors }},
	{"Tags", func(c *Card) *Value { return &c.Tags }},
}

// SideFields lists the per-face fields in output order.
var SideFields = []SideField{
	{"Cost", func(f *Face) *Value { return &f.Cost }},
	{"Supertype(s)", func(f *Face) *Value { return &f.Supertypes }},
	{"Card Type(s)", func(f *Face) *Value { return &f.CardTypes }},
	{"Subtype(s)", func(f *Face) *Value { return &f.Subtypes }},
	{"power", func(f *Face) *Value { return &f.Power }},
	{"toughness", func(f *Face) *Value { return &f.Toughness }},
	{"Loyalty", func(f *Face) *Value { return &f.Loyalty }},
	{"Text Box", func(f *Face) *Value { return &f.TextBox }},
	{"Flavor Text", func(f *Face) *Value { return &f.FlavorText }},
}

// UnmarshalJSON decodes a database record. Side fields are parallel arrays
// upstream; they are zipped into Slots here so every face owns its values.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Card{}

	for _, f := range ScalarFields {
		msg, ok := raw[f.Key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, f.Ref(c)); err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
	}

	for _, f := range SideFields {
		msg, ok := raw[f.Key]
		if !ok {
			continue
		}
		var values []Value
		if err := json.Unmarshal(msg, &values); err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
		for i, v := range values {
			*f.Ref(c.Slot(i)) = v
		}
	}

	return nil
}

// Slot returns the face slot at index i, growing Slots when needed
func (c *Card) Slot(i int) *Face {
	for len(c.Slots) <= i {
		c.Slots = append(c.Slots, Face{})
	}
	return &c.Slots[i]
}

// FaceIndices returns the slot indices that hold a face, ascending.
// A slot is a face when its Card Type(s) is set; cards without any
// type fall back to the same test on Cost.
func (c *Card) FaceIndices() []int {
	indices := c.indicesWhere(func(f *Face) Value { return f.CardTypes })
	if len(indices) == 0 {
		indices = c.indicesWhere(func(f *Face) Value { return f.Cost })
	}
	return indices
}

// Faces returns the faces of the card in slot order
func (c *Card) Faces() []Face {
	indices := c.FaceIndices()
	faces := make([]Face, 0, len(indices))
	for _, i := range indices {
		faces = append(faces, c.Slots[i])
	}
	return faces
}

// Ragged reports whether a side field carries data in a slot that is not a
// face. Such values are dropped from the generated output.
func (c *Card) Ragged() bool {
	isFace := make(map[int]bool)
	for _, i := range c.FaceIndices() {
		isFace[i] = true
	}

	for i := range c.Slots {
		if isFace[i] {
			continue
		}
		for _, f := range SideFields {
			if !f.Ref(&c.Slots[i]).Blank() {
				return true
			}
		}
	}
	return false
}

func (c *Card) indicesWhere(field func(*Face) Value) []int {
	var indices []int
	for i := range c.Slots {
		if !field(&c.Slots[i]).Blank() {
			indices = append(indices, i)
		}
	}
	return indices
}
