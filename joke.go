package scraper

import "context"

// Joke is a single entry from the joke API.
type Joke struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}

// JokeService retrieves jokes from a remote API.
type JokeService interface {
	// RandomJoke returns a random joke.
	RandomJoke(ctx context.Context) (*Joke, error)

	// FindJokeByID retrieves a joke by its ID.
	// Returns ENOTFOUND if the joke does not exist.
	FindJokeByID(ctx context.Context, id string) (*Joke, error)
}
