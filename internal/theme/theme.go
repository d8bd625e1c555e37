package theme

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
)

// Pair holds the two related-but-distinct words for one game: every
// citizen receives CitizenWord, the wolves receive WolfWord.
type Pair struct {
	CitizenWord string
	WolfWord    string
}

// Source supplies a word pair for a category.
type Source interface {
	Pick(category string) (Pair, error)
}

var ErrUnknownCategory = errors.New("unknown theme category")

// Catalog is the built-in category -> word-pair table. Pairs are picked
// with the supplied random source so tests are reproducible. One catalog
// serves every room, so the random source is guarded by a mutex.
type Catalog struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	pairs map[string][]Pair
}

func NewCatalog(rnd *rand.Rand) *Catalog {
	return &Catalog{
		rnd: rnd,
		pairs: map[string][]Pair{
			"food": {
				{CitizenWord: "apple", WolfWord: "orange"},
				{CitizenWord: "curry", WolfWord: "stew"},
				{CitizenWord: "ramen", WolfWord: "udon"},
				{CitizenWord: "sushi", WolfWord: "sashimi"},
			},
			"animal": {
				{CitizenWord: "dog", WolfWord: "cat"},
				{CitizenWord: "lion", WolfWord: "tiger"},
				{CitizenWord: "dolphin", WolfWord: "whale"},
			},
			"place": {
				{CitizenWord: "sea", WolfWord: "mountain"},
				{CitizenWord: "library", WolfWord: "bookstore"},
				{CitizenWord: "park", WolfWord: "amusement park"},
			},
			"object": {
				{CitizenWord: "pencil", WolfWord: "pen"},
				{CitizenWord: "chair", WolfWord: "sofa"},
				{CitizenWord: "clock", WolfWord: "timer"},
			},
		},
	}
}

// Categories lists the known category names.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.pairs))
	for name := range c.pairs {
		names = append(names, name)
	}
	return names
}

// Pick returns a random pair for the category. Category matching is
// case-insensitive.
func (c *Catalog) Pick(category string) (Pair, error) {
	list, ok := c.pairs[strings.ToLower(strings.TrimSpace(category))]
	if !ok || len(list) == 0 {
		return Pair{}, ErrUnknownCategory
	}
	c.mu.Lock()
	idx := c.rnd.Intn(len(list))
	c.mu.Unlock()
	return list[idx], nil
}

// AddPair registers a custom pair under a category, creating the category
// when it does not exist yet.
func (c *Catalog) AddPair(category string, pair Pair) {
	key := strings.ToLower(strings.TrimSpace(category))
	c.pairs[key] = append(c.pairs[key], pair)
}
