package vocset_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/birdsonglab/vocset"
)

// writeNPZ creates a 2x3 spectrogram archive at dir/name. base offsets the
// array values so fixtures stay distinguishable.
func writeNPZ(t testing.TB, dir, name string, base float64) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	members := map[string]any{
		"s.npy": mat.NewDense(2, 3, []float64{
			base + 1, base + 2, base + 3,
			base + 4, base + 5, base + 6,
		}),
		"f.npy": []float64{1000, 2000},
		"t.npy": []float64{0, 0.01, 0.02},
	}

	zw := zip.NewWriter(f)
	for member, val := range members {
		w, err := zw.Create(member)
		if err != nil {
			t.Fatal(err)
		}
		if err := npyio.Write(w, val); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// annot builds a minimal annotation with the given labels.
func annot(file string, labels ...string) *vocset.Annotation {
	onsets := make([]float64, len(labels))
	offsets := make([]float64, len(labels))
	for i := range labels {
		onsets[i] = float64(i) * 0.01
		offsets[i] = float64(i+1) * 0.01
	}
	return &vocset.Annotation{
		AnnotFile: file,
		Labels:    labels,
		Onsets:    onsets,
		Offsets:   offsets,
	}
}
