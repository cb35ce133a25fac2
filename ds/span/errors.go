package span

import "errors"

var (
	ErrLengthMismatch = errors.New("range is shorter than static extent")
)
