package generation

import (
	"github.com/phrazzld/trivia-board/internal/domain"
)

// ShuffleCategory picks exactly one clue per board value from the category.
//
// For every board value it chooses uniformly among the clues carrying that
// value. When no clue carries the value, it takes a clue that never received
// a value and assigns it the missing one; each such clue fills at most one
// slot. The returned category holds the five picks in value order. The second
// result is false when any value could not be filled, in which case the
// category should be skipped.
func ShuffleCategory(rng Random, category domain.Category) (domain.Category, bool) {
	var unvalued []domain.Clue
	for _, clue := range category.Clues {
		if clue.Value == nil {
			unvalued = append(unvalued, clue)
		}
	}

	picks := make([]domain.Clue, 0, domain.CluesPerCategory)
	for _, value := range domain.BoardValues() {
		var candidates []domain.Clue
		for _, clue := range category.Clues {
			if clue.HasValue(value.Int()) {
				candidates = append(candidates, clue)
			}
		}

		if len(candidates) > 0 {
			picks = append(picks, candidates[rng.Intn(len(candidates))])
			continue
		}

		if len(unvalued) == 0 {
			return domain.Category{}, false
		}

		i := rng.Intn(len(unvalued))
		picks = append(picks, unvalued[i].WithValue(value.Int()))
		unvalued = append(unvalued[:i], unvalued[i+1:]...)
	}

	shuffled := category
	shuffled.Clues = picks
	return shuffled, true
}
