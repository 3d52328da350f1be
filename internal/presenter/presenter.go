package presenter

import (
	"errors"
	"fmt"
	"io"

	"textsummarizer/internal/summarizer"
)

const summaryLabel = "Summary:"

var ErrNoResult = errors.New("summary result is empty")

// Article echoes the loaded document followed by a blank line.
func Article(w io.Writer, text string) error {
	if _, err := fmt.Fprintf(w, "Article loaded:\n%s\n\n", text); err != nil {
		return fmt.Errorf("write article: %w", err)
	}

	return nil
}

// Summary writes the text of the first result with a fixed label.
func Summary(w io.Writer, results []summarizer.Result) error {
	if len(results) == 0 {
		return ErrNoResult
	}

	if _, err := fmt.Fprintln(w, summaryLabel, results[0].SummaryText); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// Diagnostic writes a handled error as a single line.
func Diagnostic(w io.Writer, err error) error {
	if _, werr := fmt.Fprintln(w, err.Error()); werr != nil {
		return fmt.Errorf("write diagnostic: %w", werr)
	}

	return nil
}
