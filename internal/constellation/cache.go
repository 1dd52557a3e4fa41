package constellation

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// constellationCache holds reference data read from the database. Entries
// are shared between callers and must be treated as read-only.
type constellationCache struct {
	byID       *expirable.LRU[string, *domain.Constellation]
	lists      *expirable.LRU[string, []domain.Constellation]
	characters *expirable.LRU[string, domain.Character]
}

func newConstellationCache(size int, ttl time.Duration) *constellationCache {
	return &constellationCache{
		byID:       expirable.NewLRU[string, *domain.Constellation](size, nil, ttl),
		lists:      expirable.NewLRU[string, []domain.Constellation](1, nil, ttl),
		characters: expirable.NewLRU[string, domain.Character](size*8, nil, ttl),
	}
}

func (c *constellationCache) Get(id string) (*domain.Constellation, bool) {
	return c.byID.Get(id)
}

func (c *constellationCache) Set(con *domain.Constellation) {
	c.byID.Add(con.ID, con)
}

func (c *constellationCache) GetAll() ([]domain.Constellation, bool) {
	return c.lists.Get(cacheKeyAll)
}

func (c *constellationCache) SetAll(list []domain.Constellation) {
	c.lists.Add(cacheKeyAll, list)
}

func (c *constellationCache) GetCharacter(id string) (domain.Character, bool) {
	return c.characters.Get(id)
}

func (c *constellationCache) SetCharacter(ch domain.Character) {
	c.characters.Add(ch.ID, ch)
}

// Clear removes all entries from the cache.
func (c *constellationCache) Clear() {
	c.byID.Purge()
	c.lists.Purge()
	c.characters.Purge()
}
