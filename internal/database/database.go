package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/hellscube/cubegen/internal/card"
)

// Database is the card collection the generated script embeds
type Database struct {
	Cards []*card.Card

	augmented bool
}

// Load fetches the upstream collection, appends the basic lands and
// applies the known corrections.
func Load(ctx context.Context, f Fetcher) (*Database, error) {
	cards, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	for i, c := range cards {
		if c == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
	}

	db := &Database{Cards: cards}
	db.Correct()
	db.Augment()

	return db, nil
}

// BySet returns the cards of one set in database order
func (db *Database) BySet(set string) []*card.Card {
	var cards []*card.Card
	for _, c := range db.Cards {
		if c.Set.Valid && strings.EqualFold(strings.TrimSpace(c.Set.Text), set) {
			cards = append(cards, c)
		}
	}
	return cards
}

// Find looks a card up by name, ignoring case
func (db *Database) Find(name string) (*card.Card, error) {
	name = strings.TrimSpace(name)
	for _, c := range db.Cards {
		if c.Name.Valid && strings.EqualFold(strings.TrimSpace(c.Name.Text), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", name)
}

// FaceCount is the number of faces across all cards
func (db *Database) FaceCount() int {
	n := 0
	for _, c := range db.Cards {
		n += len(c.FaceIndices())
	}
	return n
}
