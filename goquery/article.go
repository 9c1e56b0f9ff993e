package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraper"
)

// bodySelectors are tried in order; the first one present on the page
// supplies the paragraphs. Current markup comes first, generic last.
var bodySelectors = []string{
	"div.c-article-body",
	"div.article__body",
	"div.article-item__body",
	"div.article__content",
	"div.main-content",
}

// Ensure ArticleExtractor implements scraper.ArticleExtractor at compile time.
var _ scraper.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor pulls the title and paragraph text out of article pages.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract returns the article's cleaned title, file name and body text.
//
// When no body container matches, or the matched container holds no
// paragraphs, every paragraph on the page is used instead. That fallback
// can pick up navigation and footer text.
func (e *ArticleExtractor) Extract(html string) (*scraper.ExtractResult, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return &scraper.ExtractResult{Status: scraper.ExtractNoTitle}, nil
	}
	title := scraper.CleanTitle(heading.Text())
	if scraper.SanitizeFilename(title) == "" {
		// A heading with nothing usable would produce a bare ".txt".
		return &scraper.ExtractResult{Status: scraper.ExtractNoTitle}, nil
	}

	content := joinParagraphs(bodyParagraphs(doc))

	status := scraper.ExtractOK
	if content == "" {
		status = scraper.ExtractEmptyBody
	}

	return &scraper.ExtractResult{
		Status:   status,
		Title:    title,
		Filename: scraper.ArticleFilename(title),
		Content:  content,
	}, nil
}

func bodyParagraphs(doc *goquery.Document) *goquery.Selection {
	for _, selector := range bodySelectors {
		body := doc.Find(selector).First()
		if body.Length() == 0 {
			continue
		}
		if paragraphs := body.Find("p"); paragraphs.Length() > 0 {
			return paragraphs
		}
		break
	}
	return doc.Find("p")
}

func joinParagraphs(paragraphs *goquery.Selection) string {
	texts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, trimmedText(p))
	})
	return strings.Join(texts, "\n")
}
