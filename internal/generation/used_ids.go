package generation

// UsedIDs records every category identifier drawn during one game
// generation so that no category is drawn twice, within a board or across
// the two boards of a game. It is not safe for concurrent use.
type UsedIDs struct {
	ids map[int]struct{}
}

// NewUsedIDs creates a registry pre-filled with the given identifiers.
func NewUsedIDs(ids ...int) *UsedIDs {
	u := &UsedIDs{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		u.Add(id)
	}
	return u
}

// Add records an identifier as used.
func (u *UsedIDs) Add(id int) {
	if u.ids == nil {
		u.ids = make(map[int]struct{})
	}
	u.ids[id] = struct{}{}
}

// Contains reports whether the identifier has been used.
func (u *UsedIDs) Contains(id int) bool {
	_, ok := u.ids[id]
	return ok
}

// Len returns the number of used identifiers.
func (u *UsedIDs) Len() int {
	return len(u.ids)
}

// CountInRange returns how many used identifiers fall in [lo, hi).
func (u *UsedIDs) CountInRange(lo, hi int) int {
	count := 0
	for id := range u.ids {
		if id >= lo && id < hi {
			count++
		}
	}
	return count
}
