package vocset

import (
	"fmt"

	"github.com/birdsonglab/vocset/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain a single definition.
type UnsupportedFormatError = types.UnsupportedFormatError

// ConflictingInputsError is an alias to types.ConflictingInputsError.
// Re-exporting from internal/types to maintain a single definition.
type ConflictingInputsError = types.ConflictingInputsError

// MissingInputError is an alias to types.MissingInputError.
// Re-exporting from internal/types to maintain a single definition.
type MissingInputError = types.MissingInputError

// LengthMismatchError is an alias to types.LengthMismatchError.
// Re-exporting from internal/types to maintain a single definition.
type LengthMismatchError = types.LengthMismatchError

// DuplicateFileError is an alias to types.DuplicateFileError.
// Re-exporting from internal/types to maintain a single definition.
type DuplicateFileError = types.DuplicateFileError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain a single definition.
type CorruptedFileError = types.CorruptedFileError

// ShapeError is an alias to types.ShapeError.
// Re-exporting from internal/types to maintain a single definition.
type ShapeError = types.ShapeError

// LoadError reports that one array file failed to load. A LoadError aborts
// the whole build: no partial dataset is ever returned.
type LoadError struct {
	Err  error
	Path string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: load failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause, so callers can inspect it with
// errors.Is and errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}
