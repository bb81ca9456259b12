// Package types provides the format enumeration and error types shared by
// the array-archive loaders and the public API.
package types

import (
	"io"
	"strings"

	"github.com/birdsonglab/vocset/internal/binary"
)

// Format represents a supported array-archive format.
//
// The set of formats is closed: a Format value only has meaning when a
// loader is registered for it, and loaders live in this module's internal
// format packages.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMAT represents MATLAB Level-5 MAT-files.
	FormatMAT
	// FormatNPZ represents NumPy .npz archives.
	FormatNPZ
)

// String returns the conventional lowercase name of the format, matching
// the names accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatMAT:
		return "mat"
	case FormatNPZ:
		return "npz"
	default:
		return "unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMAT:
		return []string{".mat"}
	case FormatNPZ:
		return []string{".npz"}
	default:
		return nil
	}
}

// MatchesPath reports whether path has one of the format's extensions.
// The comparison is case-insensitive.
func (f Format) MatchesPath(path string) bool {
	for _, ext := range f.Extensions() {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}

// ParseFormat converts a format name, as supplied by an external
// configuration layer, into a Format value.
//
// Recognized names are "mat" and "npz" (case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mat":
		return FormatMAT, nil
	case "npz":
		return FormatNPZ, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{
			Name:   name,
			Reason: "unrecognized format name",
		}
	}
}

// matMagic is the start of the descriptive text every Level-5 MAT-file
// header begins with.
const matMagic = "MATLAB 5.0"

// zipMagic is the local-file-header signature of a zip archive, which is
// what an .npz file is.
const zipMagic = "PK\x03\x04"

// DetectFormat determines the array-archive format by examining magic bytes.
//
// Detection is based on file signatures at the beginning of the file; it
// does not validate the archive structure beyond the signature.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < int64(len(matMagic)) {
		return FormatUnknown, &UnsupportedFormatError{
			Name:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, len(matMagic))
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Name:   path,
			Reason: "failed to read file header",
		}
	}

	if string(magic) == matMagic {
		return FormatMAT, nil
	}

	if string(magic[:len(zipMagic)]) == zipMagic {
		return FormatNPZ, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Name:   path,
		Reason: "unsupported file signature",
	}
}
