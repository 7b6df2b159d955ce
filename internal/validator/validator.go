package validator

import (
	"fmt"
	"strings"

	"github.com/hellscube/cubegen/internal/card"
	"github.com/hellscube/cubegen/internal/layout"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK is true when no errors were found
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   []*card.Card
	Layouts []layout.Layout
	Results ValidationResults
}

func NewValidator(cards []*card.Card, layouts []layout.Layout) *Validator {
	return &Validator{
		Cards:   cards,
		Layouts: layouts,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateCards()
	v.validateLayouts()

	return v.Results
}

// validateCards reports data that would be dropped or misplaced in the
// generated tables. None of it stops generation.
func (v *Validator) validateCards() {
	seen := make(map[string]int)

	for i, c := range v.Cards {
		label := cardLabel(i, c)

		if c.Name.Blank() {
			v.warnf("%s has no name", label)
		} else {
			seen[c.Name.Text]++
			if seen[c.Name.Text] == 2 {
				v.warnf("duplicate card name: %s", c.Name.Text)
			}
		}

		if len(c.Slots) > card.MaxFaces {
			v.warnf("%s has %d face slots (expected at most %d)", label, len(c.Slots), card.MaxFaces)
		}

		if len(c.FaceIndices()) == 0 {
			v.warnf("%s has no faces", label)
		} else if c.Ragged() {
			v.warnf("%s has side fields outside its faces; those values are dropped", label)
		}
	}
}

func (v *Validator) validateLayouts() {
	seen := make(map[string]bool)

	for i, l := range v.Layouts {
		label := fmt.Sprintf("layout #%d", i+1)
		if l.Name != "" {
			label = fmt.Sprintf("layout %q", l.Name)
		}

		if strings.TrimSpace(l.Name) == "" {
			v.errorf("%s: name is required", label)
		} else if seen[l.Name] {
			v.warnf("duplicate layout name: %s (the last entry wins)", l.Name)
		}
		seen[l.Name] = true

		if strings.TrimSpace(l.Type) == "" {
			v.errorf("%s: type is required", label)
		}

		if l.Sides < 1 {
			v.errorf("%s: sides must be at least 1, got %d", label, l.Sides)
		}

		if l.Grid != nil && (l.Grid.X < 1 || l.Grid.Y < 1) {
			v.errorf("%s: grid must be at least 1x1, got %dx%d", label, l.Grid.X, l.Grid.Y)
		}
	}
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func cardLabel(i int, c *card.Card) string {
	if c.Name.Blank() {
		return fmt.Sprintf("card #%d", i+1)
	}
	return fmt.Sprintf("card %q", c.Name.Text)
}
