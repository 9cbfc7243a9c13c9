package report

import "errors"

var (
	// ErrInconsistent is returned when component outputs are not aligned.
	ErrInconsistent = errors.New("report: inconsistent inputs")

	// ErrUnknownFormat is returned by Write for an unsupported format name.
	ErrUnknownFormat = errors.New("report: unknown format")
)
