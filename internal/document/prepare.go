package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"mvdan.cc/xurls/v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

type PrepareOptions struct {
	Format    Format
	StripURLs bool
}

var (
	urlRe = xurls.Strict()

	spaceRe     = regexp.MustCompile(`[ \t\f\v\r]+`)
	blankLineRe = regexp.MustCompile(`\n\s*\n+`)
)

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr, article, section"

// Prepare turns a loaded document into model input. Plain text without URL
// stripping is returned as is.
func Prepare(text string, opts PrepareOptions) (string, error) {
	out := text
	changed := false

	if opts.Format == FormatHTML {
		extracted, err := extractHTMLText(out)
		if err != nil {
			return "", err
		}
		out = extracted
		changed = true
	}

	if opts.StripURLs {
		out = urlRe.ReplaceAllString(out, "")
		changed = true
	}

	if !changed {
		return text, nil
	}

	return normalizeWhitespace(out), nil
}

func extractHTMLText(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, head").Remove()

	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text(), nil
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}

	joined := strings.Join(lines, "\n")
	joined = blankLineRe.ReplaceAllString(joined, "\n\n")

	return strings.TrimSpace(joined)
}
