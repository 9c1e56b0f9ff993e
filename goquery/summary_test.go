package goquery_test

import (
	"testing"

	"github.com/fwojciec/scraper"
	"github.com/fwojciec/scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns title and description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>
	Quantum sensing gets real
</title>
<meta name="description" content=" A new sensor beats the classical limit. ">
</head><body></body></html>`

		summary, err := goquery.NewSummarizer().Summarize(html)

		require.NoError(t, err)
		assert.Equal(t, "Quantum sensing gets real", summary.Title)
		assert.Equal(t, "A new sensor beats the classical limit.", summary.Description)
	})

	t.Run("missing title is not found", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="description" content="d"></head></html>`

		_, err := goquery.NewSummarizer().Summarize(html)

		assert.Equal(t, scraper.ENOTFOUND, scraper.ErrorCode(err))
	})

	t.Run("missing description is not found", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head></html>`

		_, err := goquery.NewSummarizer().Summarize(html)

		assert.Equal(t, scraper.ENOTFOUND, scraper.ErrorCode(err))
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><meta name="description" content=""></head></html>`

		summary, err := goquery.NewSummarizer().Summarize(html)

		require.NoError(t, err)
		assert.Empty(t, summary.Description)
	})
}
