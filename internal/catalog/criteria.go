package catalog

// SortOption selects the projection ordering.
type SortOption string

const (
	SortNone     SortOption = ""
	SortRating   SortOption = "rating"
	SortPrepTime SortOption = "prepTime"
	SortNewest   SortOption = "newest"
)

// PrepTimeRange is a half-open [Min, Max) window in minutes. Max <= 0
// means unbounded.
type PrepTimeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria holds the current filter selection. Pure state: setters accept
// any string, matching happens in Project.
type Criteria struct {
	Category      string
	SearchQuery   string
	Difficulty    string
	PrepTimeRange *PrepTimeRange
	SortBy        SortOption
}

// DefaultCriteria selects every recipe in insertion order.
func DefaultCriteria() Criteria {
	return Criteria{Category: "all"}
}

func (c *Criteria) SetCategory(category string) {
	c.Category = category
}

func (c *Criteria) SetSearchQuery(query string) {
	c.SearchQuery = query
}

func (c *Criteria) SetDifficulty(difficulty string) {
	c.Difficulty = difficulty
}

func (c *Criteria) SetPrepTimeRange(r *PrepTimeRange) {
	c.PrepTimeRange = r
}

func (c *Criteria) SetSortBy(sort SortOption) {
	c.SortBy = sort
}

// Reset restores all defaults.
func (c *Criteria) Reset() {
	*c = DefaultCriteria()
}
