// Package domain contains the core entities of the trivia board: the clues and
// categories supplied by the upstream data source, the five canonical board
// values, and the board, category and clue structures handed to gameplay code.
// It is independent of any specific data source or delivery mechanism.
package domain
