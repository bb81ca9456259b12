package vocset

import (
	"io"

	"github.com/birdsonglab/vocset/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types lets the format packages and the public
// API share one definition.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMAT     = types.FormatMAT
	FormatNPZ     = types.FormatNPZ
)

// ParseFormat converts a format name, as supplied by an external
// configuration layer, into a Format value.
//
// Recognized names are "mat" and "npz" (case-insensitive). Unrecognized
// names fail with UnsupportedFormatError.
func ParseFormat(name string) (Format, error) {
	return types.ParseFormat(name)
}

// DetectFormat determines the array-archive format by examining magic bytes.
// Maintains the public API while delegating to the internal implementation.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
