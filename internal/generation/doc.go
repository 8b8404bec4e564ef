// Package generation builds trivia game boards from upstream clue data.
//
// The package consumes a ClueSource, the boundary to the external clue
// service, and never talks to the network itself. Generation runs in four
// layers:
//
//   - domain.NormalizeValue maps a clue value to one of the five board values.
//   - ShuffleCategory picks one clue per board value from a fetched category,
//     backfilling missing values from clues that never received a value.
//   - BoardGenerator draws random category identifiers, shuffles the fetched
//     categories, places daily doubles and assembles a domain.Board.
//   - GameAssembler generates the single and double boards with a shared
//     UsedIDs registry and picks a bonus clue that is not on either board.
//
// All random choices go through the Random interface so that tests can run
// generation under a seeded source.
package generation
