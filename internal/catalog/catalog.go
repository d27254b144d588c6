package catalog

import (
	"math/rand"

	"gameshelf-backend/internal/domain"
)

// seedGames is the fixed demo catalog, loaded at process start and never
// mutated afterwards.
var seedGames = []domain.BoardGame{
	{ID: "catan", Title: "Catan", Genre: domain.GenreStrategy, MinPlayers: 3, MaxPlayers: 4, MinAge: 10, Difficulty: domain.DifficultyMedium, DailyPrice: 5.99, Deposit: 25.00, Description: "Trade, build and settle the island of Catan in this modern classic of resource management.", Rating: 4.5},
	{ID: "ticket-to-ride", Title: "Ticket to Ride", Genre: domain.GenreFamily, MinPlayers: 2, MaxPlayers: 5, MinAge: 8, Difficulty: domain.DifficultyEasy, DailyPrice: 4.99, Deposit: 20.00, Description: "Collect train cards and claim railway routes across North America.", Rating: 4.6},
	{ID: "pandemic", Title: "Pandemic", Genre: domain.GenreCooperative, MinPlayers: 2, MaxPlayers: 4, MinAge: 8, Difficulty: domain.DifficultyMedium, DailyPrice: 5.49, Deposit: 22.00, Description: "Work together as a team of specialists to stop four diseases from spreading.", Rating: 4.4},
	{ID: "codenames", Title: "Codenames", Genre: domain.GenreParty, MinPlayers: 4, MaxPlayers: 8, MinAge: 14, Difficulty: domain.DifficultyEasy, DailyPrice: 3.49, Deposit: 12.00, Description: "Give one-word clues to help your team find its secret agents first.", Rating: 4.7},
	{ID: "azul", Title: "Azul", Genre: domain.GenreAbstract, MinPlayers: 2, MaxPlayers: 4, MinAge: 8, Difficulty: domain.DifficultyEasy, DailyPrice: 4.49, Deposit: 18.00, Description: "Draft colorful tiles to decorate the walls of the royal palace of Evora.", Rating: 4.5},
	{ID: "wingspan", Title: "Wingspan", Genre: domain.GenreStrategy, MinPlayers: 1, MaxPlayers: 5, MinAge: 10, Difficulty: domain.DifficultyMedium, DailyPrice: 6.99, Deposit: 30.00, Description: "Attract a flock of birds to your wildlife preserves in this engine-building hit.", Rating: 4.8},
	{ID: "gloomhaven", Title: "Gloomhaven", Genre: domain.GenreThematic, MinPlayers: 1, MaxPlayers: 4, MinAge: 14, Difficulty: domain.DifficultyHard, DailyPrice: 9.99, Deposit: 50.00, Description: "A sprawling campaign of tactical combat in a persistent fantasy world.", Rating: 4.7},
	{ID: "splendor", Title: "Splendor", Genre: domain.GenreStrategy, MinPlayers: 2, MaxPlayers: 4, MinAge: 10, Difficulty: domain.DifficultyEasy, DailyPrice: 3.99, Deposit: 15.00, Description: "Build a gem-trading empire one development card at a time.", Rating: 4.3},
	{ID: "dixit", Title: "Dixit", Genre: domain.GenreParty, MinPlayers: 3, MaxPlayers: 6, MinAge: 8, Difficulty: domain.DifficultyEasy, DailyPrice: 3.99, Deposit: 14.00, Description: "Tell a story from a dreamlike picture card and let the table guess which one is yours.", Rating: 4.4},
	{ID: "terraforming-mars", Title: "Terraforming Mars", Genre: domain.GenreStrategy, MinPlayers: 1, MaxPlayers: 5, MinAge: 12, Difficulty: domain.DifficultyHard, DailyPrice: 7.99, Deposit: 35.00, Description: "Lead a corporation raising the temperature, oxygen and oceans of Mars.", Rating: 4.6},
}

// cityFacts is the fixed pool the celebration screen draws from after a
// supported location is confirmed.
var cityFacts = []string{
	"Orlando hosts more than 70 million visitors a year, more than any other US city.",
	"There are over 100 lakes inside Orlando's city limits.",
	"Orlando was originally named Jernigan, after the family that settled it in 1843.",
	"Gatorland has operated in Orlando since 1949, long before the theme parks arrived.",
	"Orlando's nickname is The City Beautiful.",
	"Church Street Station was downtown Orlando's top attraction in the 1970s.",
	"The Orlando area has more than 20 theme and water parks.",
	"Lake Eola's fountain has been an Orlando landmark since 1912.",
	"Orlando is one of the world's largest centers for the simulation industry.",
	"The swan boats on Lake Eola have glided there since the 1920s.",
}

// Games returns the seed catalog.
func Games() []domain.BoardGame {
	return seedGames
}

// GameByID looks a game up in the seed catalog.
func GameByID(id string) (domain.BoardGame, bool) {
	for _, g := range seedGames {
		if g.ID == id {
			return g, true
		}
	}
	return domain.BoardGame{}, false
}

// RandomCityFact picks one fact from the fixed pool.
func RandomCityFact() string {
	return cityFacts[rand.Intn(len(cityFacts))]
}
