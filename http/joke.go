package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/scraper"
)

// Ensure JokeService implements scraper.JokeService at compile time.
var _ scraper.JokeService = (*JokeService)(nil)

// JokeService reads jokes from an icanhazdadjoke-compatible JSON API.
type JokeService struct {
	baseURL string
	client  *http.Client
}

// NewJokeService creates a JokeService for the API rooted at baseURL.
// A zero timeout selects DefaultFetchTimeout.
func NewJokeService(baseURL string, timeout time.Duration) *JokeService {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &JokeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// RandomJoke returns a random joke.
func (s *JokeService) RandomJoke(ctx context.Context) (*scraper.Joke, error) {
	joke, err := s.get(ctx, s.baseURL+"/")
	if err != nil {
		return nil, err
	}
	if joke.Joke == "" {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "joke API returned no joke")
	}
	return joke, nil
}

// FindJokeByID retrieves a joke by its ID.
func (s *JokeService) FindJokeByID(ctx context.Context, id string) (*scraper.Joke, error) {
	if strings.TrimSpace(id) == "" {
		return nil, scraper.Errorf(scraper.EINVALID, "joke ID required")
	}

	joke, err := s.get(ctx, s.baseURL+"/j/"+url.PathEscape(id))
	if scraper.StatusCode(err) == http.StatusNotFound {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "joke %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	if joke.Joke == "" {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "joke %q not found", id)
	}
	return joke, nil
}

func (s *JokeService) get(ctx context.Context, rawURL string) (*scraper.Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &scraper.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &scraper.FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	var joke scraper.Joke
	if err := json.NewDecoder(resp.Body).Decode(&joke); err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "failed to decode joke: %v", err)
	}
	return &joke, nil
}
