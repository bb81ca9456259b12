package types

import "fmt"

// UnsupportedFormatError is returned when a format has no registered loader
// or a format name is not recognized.
type UnsupportedFormatError struct {
	Name   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Name, e.Reason)
}

// ConflictingInputsError is returned when more than one addressing mode is
// supplied to the dataset builder, or when a file-to-annotation map is
// combined with a positional annotation list.
type ConflictingInputsError struct {
	First  string
	Second string
}

func (e *ConflictingInputsError) Error() string {
	return fmt.Sprintf("conflicting inputs: %s and %s cannot be combined", e.First, e.Second)
}

// MissingInputError is returned when no addressing mode is supplied to the
// dataset builder.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return "no input supplied: exactly one of WithDir, WithFiles, or WithAnnotMap is required"
}

// LengthMismatchError is returned when a positional annotation list does not
// have one annotation per resolved array file.
type LengthMismatchError struct {
	Files  int
	Annots int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d array files but %d annotations", e.Files, e.Annots)
}

// DuplicateFileError is returned when the same array file appears more than
// once in an explicit file list.
type DuplicateFileError struct {
	Path string
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("%s: duplicate array file in input", e.Path)
}

// CorruptedFileError is returned when an archive's structure is invalid or
// an expected variable is missing from it.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// ShapeError is returned when a loaded array's dimensions disagree with its
// frequency or time axis vectors.
type ShapeError struct {
	Rows     int
	Cols     int
	FreqBins int
	TimeBins int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("array shape %dx%d does not match %d frequency bins and %d time bins",
		e.Rows, e.Cols, e.FreqBins, e.TimeBins)
}
