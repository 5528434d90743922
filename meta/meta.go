// meta/meta.go
package meta

// SEARCH_DEPTH defines the default number of plies searched beyond a candidate turn.
const SEARCH_DEPTH = 4

// GO_ROUTINES defines the default number of goroutines scoring root candidates.
const GO_ROUTINES = 8

// CACHE_ENTRIES bounds the memo cache before it is cleared.
const CACHE_ENTRIES = 1 << 20

// MAX_TURNS defines the turn limit after which a game is declared drawn.
const MAX_TURNS = 300

// MAX_INVALID_PROPOSALS defines how many illegal proposals in a row a player may make.
const MAX_INVALID_PROPOSALS = 10
