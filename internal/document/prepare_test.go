package document_test

import (
	"strings"
	"testing"

	"textsummarizer/internal/document"
)

func TestPrepareTextIsIdentity(t *testing.T) {
	raw := "  Keep   this\n\n\n exactly  "

	got, err := document.Prepare(raw, document.PrepareOptions{Format: document.FormatText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != raw {
		t.Fatalf("expected text to be unchanged, got %q", got)
	}
}

func TestPrepareHTMLExtractsVisibleText(t *testing.T) {
	raw := `<html><head><title>Ignored</title><style>p{}</style></head>
<body><p>Hello <b>world</b></p><script>track()</script><p>Second paragraph</p></body></html>`

	got, err := document.Prepare(raw, document.PrepareOptions{Format: document.FormatHTML})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Hello world", "Second paragraph"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}

	for _, unwanted := range []string{"Ignored", "track()", "p{}", "<b>"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("unexpected %q in output %q", unwanted, got)
		}
	}
}

func TestPrepareStripsURLs(t *testing.T) {
	raw := "Read more at https://example.com/post?id=1 and http://foo.org today."

	got, err := document.Prepare(raw, document.PrepareOptions{Format: document.FormatText, StripURLs: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "example.com") || strings.Contains(got, "foo.org") {
		t.Fatalf("expected URLs to be removed, got %q", got)
	}

	if got != "Read more at and today." {
		t.Fatalf("unexpected output: %q", got)
	}
}
