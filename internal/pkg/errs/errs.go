package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Thin wrapper around cockroachdb/errors so the rest of the codebase does not
// depend on it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr as a reference error: errors.Is(result, markErr)
// holds, the cause message prefixes the result, and the full cause chain
// stays available for %+v output.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.WithSecondaryError(cr.WithMessage(markErr, err.Error()), err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
