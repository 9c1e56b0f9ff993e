package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scraper"
)

// Run executes the joke command.
func (c *JokeCmd) Run(deps *Dependencies) error {
	id := c.ID
	if id == "" {
		p := newPrompter(deps.Stdin, deps.Stdout)
		answer, err := p.ask("Do you want some random joke or you will try to hit id? yes/no ")
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "yes":
		case "no":
			if id, err = p.ask("Input id of joke:\n"); err != nil {
				return err
			}
			if id == "" {
				fmt.Fprintln(deps.Stdout, "Invalid resource!")
				return nil
			}
		default:
			fmt.Fprintln(deps.Stdout, "Invalid input. Showing a random joke by default.")
		}
	}

	if id == "" {
		joke, err := deps.Jokes.RandomJoke(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scraper.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, joke.Joke)
		return nil
	}

	joke, err := deps.Jokes.FindJokeByID(deps.Ctx, id)
	if err != nil {
		deps.Logger.Warn("joke lookup failed", "id", id, "err", err)
		fmt.Fprintln(deps.Stdout, "Invalid resource!")
		return nil
	}
	fmt.Fprintln(deps.Stdout, joke.Joke)
	return nil
}
