// Package npz loads spectrogram arrays from NumPy .npz archives.
//
// An .npz file is a zip archive whose members are .npy files, one per saved
// array. The spectrogram matrix is stored under the member "s" (or "spect"),
// the axis vectors under "f"/"freq_bins" and "t"/"time_bins". Members are
// decoded with npyio; float32 payloads are widened to float64.
package npz

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/birdsonglab/vocset/internal/registry"
	"github.com/birdsonglab/vocset/internal/types"
)

func init() {
	registry.Register(types.FormatNPZ, &Loader{})
}

// Member name aliases, checked in order.
var (
	spectKeys = []string{"s", "spect"}
	freqKeys  = []string{"f", "freq_bins"}
	timeKeys  = []string{"t", "time_bins"}
)

// Loader implements registry.Loader for .npz archives.
type Loader struct{}

// Load reads the spectrogram matrix and axis vectors from an .npz archive.
func (l *Loader) Load(path string) (*mat.Dense, []float64, []float64, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("not a zip archive: %v", err),
		}
	}
	defer zr.Close()

	members := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		members[strings.TrimSuffix(f.Name, ".npy")] = f
	}

	spectMember, err := lookup(members, path, spectKeys)
	if err != nil {
		return nil, nil, nil, err
	}
	freqMember, err := lookup(members, path, freqKeys)
	if err != nil {
		return nil, nil, nil, err
	}
	timeMember, err := lookup(members, path, timeKeys)
	if err != nil {
		return nil, nil, nil, err
	}

	array, err := readMatrix(spectMember, path)
	if err != nil {
		return nil, nil, nil, err
	}
	freqBins, err := readVector(freqMember, path)
	if err != nil {
		return nil, nil, nil, err
	}
	timeBins, err := readVector(timeMember, path)
	if err != nil {
		return nil, nil, nil, err
	}

	return array, freqBins, timeBins, nil
}

func lookup(members map[string]*zip.File, path string, keys []string) (*zip.File, error) {
	for _, key := range keys {
		if f, ok := members[key]; ok {
			return f, nil
		}
	}
	return nil, &types.CorruptedFileError{
		Path:   path,
		Reason: fmt.Sprintf("no member named %q found", keys[0]+".npy"),
	}
}

// readMember extracts one .npy member into memory.
func readMember(f *zip.File, path string) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("open member %q: %v", f.Name, err),
		}
	}
	defer rc.Close()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("read member %q: %v", f.Name, err),
		}
	}
	return buf, nil
}

// readMatrix decodes a 2-D member into a frequency x time matrix.
func readMatrix(f *zip.File, path string) (*mat.Dense, error) {
	buf, err := readMember(f, path)
	if err != nil {
		return nil, err
	}

	var m mat.Dense
	if err := npyio.Read(bytes.NewReader(buf), &m); err == nil {
		return &m, nil
	}

	// float32 payloads cannot be read into a Dense directly.
	r, err := npyio.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("member %q: invalid npy data: %v", f.Name, err),
		}
	}

	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("member %q has %d dimensions, want 2", f.Name, len(shape)),
		}
	}

	var vals []float32
	if err := r.Read(&vals); err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("member %q: invalid npy data: %v", f.Name, err),
		}
	}

	rows, cols := shape[0], shape[1]
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if r.Header.Descr.Fortran {
				d.Set(i, j, float64(vals[j*rows+i]))
			} else {
				d.Set(i, j, float64(vals[i*cols+j]))
			}
		}
	}
	return d, nil
}

// readVector decodes a 1-D member (axis bins) into a float64 slice.
func readVector(f *zip.File, path string) ([]float64, error) {
	buf, err := readMember(f, path)
	if err != nil {
		return nil, err
	}

	var v []float64
	if err := npyio.Read(bytes.NewReader(buf), &v); err == nil {
		return v, nil
	}

	var v32 []float32
	if err := npyio.Read(bytes.NewReader(buf), &v32); err != nil {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("member %q: invalid npy data: %v", f.Name, err),
		}
	}

	v = make([]float64, len(v32))
	for i, x := range v32 {
		v[i] = float64(x)
	}
	return v, nil
}
