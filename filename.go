package scraper

import (
	"strconv"
	"strings"
)

// ArticleFileExt is appended to sanitized titles.
const ArticleFileExt = ".txt"

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// SanitizeFilename turns an article title into a file stem. ASCII
// punctuation is removed, spaces become underscores, and surrounding
// whitespace is trimmed last, so spaces exposed at either end by punctuation
// removal remain as underscores.
//
// Distinct titles may sanitize to the same stem.
func SanitizeFilename(title string) string {
	stem := strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, title)
	stem = strings.ReplaceAll(stem, " ", "_")
	return strings.TrimSpace(stem)
}

// ArticleFilename returns the file name used to save an article titled title.
func ArticleFilename(title string) string {
	return SanitizeFilename(title) + ArticleFileExt
}

// CleanTitle returns the part of a heading before the first "|", trimmed.
// Publishers commonly append their site name after a pipe.
func CleanTitle(heading string) string {
	before, _, _ := strings.Cut(strings.TrimSpace(heading), "|")
	return strings.TrimSpace(before)
}

// PageDir returns the output directory name for a 1-indexed listing page.
func PageDir(page int) string {
	return "Page_" + strconv.Itoa(page)
}
