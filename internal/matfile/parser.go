// Package matfile loads spectrogram arrays from MATLAB Level-5 MAT-files.
//
// A MAT-file is a sequence of tagged data elements following a 128-byte
// header. Spectrogram files store the matrix under the variable "s" and the
// frequency and time axis vectors under "f" and "t" (the longer names
// "spect", "freq_bins" and "time_bins" are also accepted). Numeric data may
// be stored zlib-compressed (miCOMPRESSED) or narrowed to a smaller integer
// type; both are handled transparently.
package matfile

import (
	"bytes"
	"compress/zlib"
	stdbinary "encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/birdsonglab/vocset/internal/binary"
	"github.com/birdsonglab/vocset/internal/registry"
	"github.com/birdsonglab/vocset/internal/types"
)

func init() {
	registry.Register(types.FormatMAT, &Loader{})
}

// MAT-file data types (mi* in the format specification).
const (
	miINT8       = 1
	miUINT8      = 2
	miINT16      = 3
	miUINT16     = 4
	miINT32      = 5
	miUINT32     = 6
	miSINGLE     = 7
	miDOUBLE     = 9
	miINT64      = 12
	miUINT64     = 13
	miMATRIX     = 14
	miCOMPRESSED = 15
)

// MAT-file array classes (mx*_CLASS). Numeric classes span double..uint32.
const (
	mxDoubleClass = 6
	mxUint32Class = 13
)

const headerSize = 128

// Variable key aliases, checked in order.
var (
	spectKeys = []string{"s", "spect"}
	freqKeys  = []string{"f", "freq_bins"}
	timeKeys  = []string{"t", "time_bins"}
)

// Loader implements registry.Loader for MAT-files.
type Loader struct{}

// Load reads the spectrogram matrix and axis vectors from a MAT-file.
func (l *Loader) Load(path string) (*mat.Dense, []float64, []float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read mat file: %w", err)
	}

	vars, err := parse(raw, path)
	if err != nil {
		return nil, nil, nil, err
	}

	spect, err := lookup(vars, path, spectKeys)
	if err != nil {
		return nil, nil, nil, err
	}
	freq, err := lookup(vars, path, freqKeys)
	if err != nil {
		return nil, nil, nil, err
	}
	tm, err := lookup(vars, path, timeKeys)
	if err != nil {
		return nil, nil, nil, err
	}

	array, err := spect.dense(path)
	if err != nil {
		return nil, nil, nil, err
	}

	return array, freq.data, tm.data, nil
}

// variable is one named array parsed from a MAT-file.
// data is in MATLAB's column-major order.
type variable struct {
	name string
	dims []int
	data []float64
}

// dense converts a 2-D variable into a row-major matrix.
func (v *variable) dense(path string) (*mat.Dense, error) {
	if len(v.dims) != 2 {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("variable %q has %d dimensions, want 2", v.name, len(v.dims)),
		}
	}

	rows, cols := v.dims[0], v.dims[1]
	if rows*cols != len(v.data) {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("variable %q: %dx%d dimensions but %d values", v.name, rows, cols, len(v.data)),
		}
	}

	d := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			d.Set(i, j, v.data[j*rows+i])
		}
	}
	return d, nil
}

func lookup(vars map[string]*variable, path string, keys []string) (*variable, error) {
	for _, key := range keys {
		if v, ok := vars[key]; ok {
			return v, nil
		}
	}
	return nil, &types.CorruptedFileError{
		Path:   path,
		Reason: fmt.Sprintf("no variable named %q found", keys[0]),
	}
}

// parse reads every top-level variable in the file.
func parse(raw []byte, path string) (map[string]*variable, error) {
	if len(raw) < headerSize {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: "file too small for MAT-file header",
		}
	}

	if !bytes.HasPrefix(raw, []byte("MATLAB 5.0")) {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: "missing MATLAB 5.0 header text",
		}
	}

	// Endian indicator: the characters "MI" written as a 16-bit integer.
	// Reading "IM" means the file was written little-endian.
	var order stdbinary.ByteOrder
	switch string(raw[126:128]) {
	case "IM":
		order = stdbinary.LittleEndian
	case "MI":
		order = stdbinary.BigEndian
	default:
		return nil, &types.CorruptedFileError{
			Path:   path,
			Offset: 126,
			Reason: "invalid endian indicator",
		}
	}

	sr := binary.NewSafeReader(bytes.NewReader(raw), int64(len(raw)), path)
	sr.SetOrder(order)
	r := binary.NewReader(sr, headerSize)

	vars := make(map[string]*variable)
	for r.Remaining() >= 8 {
		offset := r.Offset()
		dtype, data, err := readElement(r)
		if err != nil {
			return nil, err
		}

		switch dtype {
		case miCOMPRESSED:
			inner, err := inflate(data, path, offset)
			if err != nil {
				return nil, err
			}
			if err := parseElements(inner, order, path, vars); err != nil {
				return nil, err
			}
		case miMATRIX:
			v, err := parseMatrix(data, order, path, offset)
			if err != nil {
				return nil, err
			}
			vars[v.name] = v
		default:
			// Non-matrix top-level elements (e.g. global flags) are skipped.
		}
	}

	return vars, nil
}

// parseElements parses a decompressed byte run holding whole data elements.
func parseElements(raw []byte, order stdbinary.ByteOrder, path string, vars map[string]*variable) error {
	sr := binary.NewSafeReader(bytes.NewReader(raw), int64(len(raw)), path)
	sr.SetOrder(order)
	r := binary.NewReader(sr, 0)

	for r.Remaining() >= 8 {
		offset := r.Offset()
		dtype, data, err := readElement(r)
		if err != nil {
			return err
		}
		if dtype != miMATRIX {
			continue
		}
		v, err := parseMatrix(data, order, path, offset)
		if err != nil {
			return err
		}
		vars[v.name] = v
	}
	return nil
}

// readElement reads one tagged data element, handling the small-element
// format (payloads up to 4 bytes packed into the tag itself) and the
// 8-byte padding that follows regular elements.
func readElement(r *binary.Reader) (dtype uint32, data []byte, err error) {
	word, err := binary.ReadValue[uint32](r, "element tag")
	if err != nil {
		return 0, nil, err
	}

	if small := word >> 16; small != 0 {
		if small > 4 {
			return 0, nil, &types.CorruptedFileError{
				Path:   r.Path(),
				Offset: r.Offset() - 4,
				Reason: fmt.Sprintf("small element claims %d bytes", small),
			}
		}
		buf, err := r.ReadBytes(4, "small element data")
		if err != nil {
			return 0, nil, err
		}
		return word & 0xFFFF, buf[:small], nil
	}

	size, err := binary.ReadValue[uint32](r, "element size")
	if err != nil {
		return 0, nil, err
	}

	data, err = r.ReadBytes(int(size), "element data")
	if err != nil {
		return 0, nil, err
	}

	// Elements are padded to 8-byte boundaries, with the exception of
	// compressed elements, which are written back to back.
	if word != miCOMPRESSED {
		r.Align(8)
	}

	return word, data, nil
}

// inflate decompresses a miCOMPRESSED element payload.
func inflate(data []byte, path string, offset int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Offset: offset,
			Reason: fmt.Sprintf("invalid zlib stream: %v", err),
		}
	}
	defer zr.Close()

	inner, err := io.ReadAll(zr)
	if err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Offset: offset,
			Reason: fmt.Sprintf("decompress element: %v", err),
		}
	}
	return inner, nil
}

// parseMatrix parses the subelements of one miMATRIX element:
// array flags, dimensions, name, and the real part.
func parseMatrix(data []byte, order stdbinary.ByteOrder, path string, offset int64) (*variable, error) {
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), path)
	sr.SetOrder(order)
	r := binary.NewReader(sr, 0)

	corrupted := func(reason string) error {
		return &types.CorruptedFileError{Path: path, Offset: offset, Reason: reason}
	}

	flagsType, flags, err := readElement(r)
	if err != nil {
		return nil, err
	}
	if flagsType != miUINT32 || len(flags) < 4 {
		return nil, corrupted("malformed array flags subelement")
	}
	class := order.Uint32(flags[:4]) & 0xFF
	if class < mxDoubleClass || class > mxUint32Class {
		return nil, corrupted(fmt.Sprintf("unsupported array class %d", class))
	}

	dimsType, dimsData, err := readElement(r)
	if err != nil {
		return nil, err
	}
	if dimsType != miINT32 || len(dimsData)%4 != 0 {
		return nil, corrupted("malformed dimensions subelement")
	}
	dims := make([]int, len(dimsData)/4)
	for i := range dims {
		dims[i] = int(int32(order.Uint32(dimsData[i*4:])))
		if dims[i] < 0 {
			return nil, corrupted("negative array dimension")
		}
	}

	nameType, nameData, err := readElement(r)
	if err != nil {
		return nil, err
	}
	if nameType != miINT8 {
		return nil, corrupted("malformed array name subelement")
	}
	name := strings.TrimRight(string(nameData), "\x00")

	realType, realData, err := readElement(r)
	if err != nil {
		return nil, err
	}
	values, err := numericValues(realType, realData, order, sr)
	if err != nil {
		return nil, corrupted(fmt.Sprintf("variable %q: %v", name, err))
	}

	count := 1
	for _, d := range dims {
		count *= d
	}
	if count != len(values) {
		return nil, corrupted(fmt.Sprintf("variable %q: dimensions imply %d values, found %d", name, count, len(values)))
	}

	return &variable{name: name, dims: dims, data: values}, nil
}

// numericValues widens a packed numeric subelement to float64. MATLAB
// narrows double arrays to the smallest integer type that can hold them,
// so the stored type need not match the array class.
func numericValues(dtype uint32, data []byte, order stdbinary.ByteOrder, sr *binary.SafeReader) ([]float64, error) {
	switch dtype {
	case miDOUBLE:
		return sr.Float64s(data, false), nil
	case miSINGLE:
		return sr.Float64s(data, true), nil
	case miINT8:
		out := make([]float64, len(data))
		for i, b := range data {
			out[i] = float64(int8(b))
		}
		return out, nil
	case miUINT8:
		out := make([]float64, len(data))
		for i, b := range data {
			out[i] = float64(b)
		}
		return out, nil
	case miINT16:
		out := make([]float64, len(data)/2)
		for i := range out {
			out[i] = float64(int16(order.Uint16(data[i*2:])))
		}
		return out, nil
	case miUINT16:
		out := make([]float64, len(data)/2)
		for i := range out {
			out[i] = float64(order.Uint16(data[i*2:]))
		}
		return out, nil
	case miINT32:
		out := make([]float64, len(data)/4)
		for i := range out {
			out[i] = float64(int32(order.Uint32(data[i*4:])))
		}
		return out, nil
	case miUINT32:
		out := make([]float64, len(data)/4)
		for i := range out {
			out[i] = float64(order.Uint32(data[i*4:]))
		}
		return out, nil
	case miINT64:
		out := make([]float64, len(data)/8)
		for i := range out {
			out[i] = float64(int64(order.Uint64(data[i*8:])))
		}
		return out, nil
	case miUINT64:
		out := make([]float64, len(data)/8)
		for i := range out {
			out[i] = float64(order.Uint64(data[i*8:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported numeric data type %d", dtype)
	}
}
