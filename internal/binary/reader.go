// Package binary provides bounds-checked, byte-order-aware binary reading
// primitives for array-archive parsers.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
//
// The byte order defaults to little-endian, which is what NumPy files and
// almost all MAT-files in the wild use. MAT-files written on big-endian
// machines flip the order; call SetOrder after reading the endian indicator.
type SafeReader struct {
	r     io.ReaderAt
	order binary.ByteOrder
	path  string
	size  int64
}

// NewSafeReader creates a new SafeReader with little-endian byte order.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:     r,
		order: binary.LittleEndian,
		size:  size,
		path:  path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the total size in bytes of the underlying source.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// Order returns the byte order used for multi-byte values.
func (sr *SafeReader) Order() binary.ByteOrder {
	return sr.order
}

// SetOrder sets the byte order used for multi-byte values.
func (sr *SafeReader) SetOrder(order binary.ByteOrder) {
	sr.order = order
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Read reads a value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T

	buf := make([]byte, typeSize(zero))
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(sr.order.Uint16(buf))
	case uint32:
		val = T(sr.order.Uint32(buf))
	case uint64:
		val = T(sr.order.Uint64(buf))
	}

	return val, nil
}

func typeSize[T uint8 | uint16 | uint32 | uint64](zero T) int {
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// Offset returns the current read position.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Remaining reports how many bytes are left before the end of the source.
func (r *Reader) Remaining() int64 {
	return r.Size() - r.offset
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}

	var zero T
	r.offset += int64(typeSize(zero))
	return val, nil
}

// ReadBytes reads length raw bytes and advances the offset.
func (r *Reader) ReadBytes(length int, what string) ([]byte, error) {
	buf := make([]byte, length)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += int64(length)
	return buf, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf, err := r.ReadBytes(length, what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Align advances the offset to the next multiple of n bytes.
// MAT-file data elements are padded to 8-byte boundaries.
func (r *Reader) Align(n int64) {
	if rem := r.offset % n; rem != 0 {
		r.offset += n - rem
	}
}

// Float64s decodes a packed IEEE float buffer into float64 values using the
// reader's byte order. single selects 32-bit elements instead of 64-bit.
func (sr *SafeReader) Float64s(buf []byte, single bool) []float64 {
	if single {
		out := make([]float64, len(buf)/4)
		for i := range out {
			out[i] = float64(math.Float32frombits(sr.order.Uint32(buf[i*4:])))
		}
		return out
	}

	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(sr.order.Uint64(buf[i*8:]))
	}
	return out
}
