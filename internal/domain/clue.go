package domain

// Clue is a single trivia clue as supplied by the upstream data source.
// Value is nil when the source never assigned a point value.
type Clue struct {
	ID         int    `json:"id"`
	Value      *int   `json:"value"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category_id"`
}

// HasValue reports whether the clue carries exactly the given point value.
func (c Clue) HasValue(value int) bool {
	return c.Value != nil && *c.Value == value
}

// WithValue returns a copy of the clue with its point value replaced.
func (c Clue) WithValue(value int) Clue {
	v := value
	c.Value = &v
	return c
}

// Category is a titled collection of clues as supplied by the upstream data
// source. The clue list may contain duplicates, miss values, or hold more or
// fewer than five clues.
type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Clues []Clue `json:"clues"`
}

// Clone returns a copy of the category whose clue slice can be modified
// without affecting the original.
func (c Category) Clone() Category {
	clues := make([]Clue, len(c.Clues))
	copy(clues, c.Clues)
	c.Clues = clues
	return c
}

// IntPtr returns a pointer to v. It is a convenience for building clues.
func IntPtr(v int) *int {
	return &v
}
