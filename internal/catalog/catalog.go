package catalog

import (
	"errors"
	"fmt"
)

// ErrQuestNotFound is returned when a quest id is not in the catalog.
var ErrQuestNotFound = errors.New("quest not found")

// Catalog is the read-only set of quests and achievements the game is played
// with. Values returned from a Catalog share backing arrays with it and must
// not be modified.
type Catalog struct {
	version      string
	quests       []Quest
	byID         map[int]int
	achievements []Achievement
	achByID      map[string]int
}

// New validates the given quests and achievements and builds a Catalog.
func New(version string, quests []Quest, achievements []Achievement) (*Catalog, error) {
	if err := Validate(version, quests, achievements); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:      version,
		quests:       quests,
		byID:         make(map[int]int, len(quests)),
		achievements: achievements,
		achByID:      make(map[string]int, len(achievements)),
	}
	for i, q := range quests {
		c.byID[q.ID] = i
	}
	for i, a := range achievements {
		c.achByID[a.ID] = i
	}
	return c, nil
}

// Builtin returns the compiled-in catalog.
func Builtin() *Catalog {
	c, err := New(builtinVersion, builtinQuests, builtinAchievements)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
	}
	return c
}

// Version returns the catalog format version.
func (c *Catalog) Version() string {
	return c.version
}

// Quests returns all quests in display order.
func (c *Catalog) Quests() []Quest {
	return c.quests
}

// Quest looks up a quest by id.
func (c *Catalog) Quest(id int) (Quest, error) {
	i, ok := c.byID[id]
	if !ok {
		return Quest{}, fmt.Errorf("%w: %d", ErrQuestNotFound, id)
	}
	return c.quests[i], nil
}

// Achievements returns all achievements in display order.
func (c *Catalog) Achievements() []Achievement {
	return c.achievements
}

// Achievement looks up an achievement by id.
func (c *Catalog) Achievement(id string) (Achievement, bool) {
	i, ok := c.achByID[id]
	if !ok {
		return Achievement{}, false
	}
	return c.achievements[i], true
}
