package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/scraper"
)

// prompter writes questions to out and reads one line of input per answer.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question verbatim and returns the next input line with the
// trailing newline removed.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", scraper.Errorf(scraper.EINVALID, "input closed before an answer was given")
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// askPageCount prompts until a positive integer is entered.
func (p *prompter) askPageCount() (int, error) {
	for {
		answer, err := p.ask("Input number of pages to search:\n")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || n < 1 {
			fmt.Fprintln(p.out, "Enter number!")
			continue
		}
		return n, nil
	}
}
