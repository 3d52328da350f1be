package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrNotFound is returned by Load when the input path does not exist. It also
// matches fs.ErrNotExist.
var ErrNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "file does not exist" }

func (notFoundError) Is(target error) bool { return target == fs.ErrNotExist }

type pathError struct {
	path string
	err  error
}

func (e *pathError) Error() string {
	return fmt.Sprintf("The file %s does not exist.", e.path)
}

func (e *pathError) Unwrap() []error { return []error{ErrNotFound, e.err} }

// Load returns the contents of the file at path unchanged. A path with a
// regular file as one of its parents does not exist either.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", &pathError{path: path, err: err}
		}

		return "", fmt.Errorf("read file %q: %w", path, err)
	}

	return string(data), nil
}

// IsHTMLPath reports whether the file extension marks an HTML document.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
