package mock

import (
	"context"

	"github.com/fwojciec/scraper"
)

var _ scraper.JokeService = (*JokeService)(nil)

// JokeService is a mock implementation of scraper.JokeService.
type JokeService struct {
	RandomJokeFn   func(ctx context.Context) (*scraper.Joke, error)
	FindJokeByIDFn func(ctx context.Context, id string) (*scraper.Joke, error)
}

func (s *JokeService) RandomJoke(ctx context.Context) (*scraper.Joke, error) {
	return s.RandomJokeFn(ctx)
}

func (s *JokeService) FindJokeByID(ctx context.Context, id string) (*scraper.Joke, error) {
	return s.FindJokeByIDFn(ctx, id)
}
