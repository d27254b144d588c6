package domain

type Genre string

const (
	GenreStrategy    Genre = "STRATEGY"
	GenreFamily      Genre = "FAMILY"
	GenreParty       Genre = "PARTY"
	GenreCooperative Genre = "COOPERATIVE"
	GenreAbstract    Genre = "ABSTRACT"
	GenreThematic    Genre = "THEMATIC"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// BoardGame is an immutable catalog entry. The catalog is seeded at process
// start and never mutated; rentals embed a copy of the game so later catalog
// price changes cannot affect existing rentals.
type BoardGame struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Genre       Genre      `json:"genre"`
	MinPlayers  int        `json:"min_players"`
	MaxPlayers  int        `json:"max_players"`
	MinAge      int        `json:"min_age"`
	Difficulty  Difficulty `json:"difficulty"`
	DailyPrice  float64    `json:"daily_price"`
	Deposit     float64    `json:"deposit"`
	Description string     `json:"description"`
	Rating      float64    `json:"rating"`
}
