package registry

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/birdsonglab/vocset/internal/types"
)

// mockLoader implements Loader for testing.
type mockLoader struct {
	name string
}

func (m *mockLoader) Load(path string) (*mat.Dense, []float64, []float64, error) {
	return mat.NewDense(1, 1, []float64{0}), []float64{0}, []float64{0}, nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	loader := &mockLoader{name: "test"}

	Register(format, loader)

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	ml, ok := got.(*mockLoader)
	if !ok {
		t.Fatal("Get() returned wrong loader type")
	}
	if ml.name != "test" {
		t.Errorf("Loader name = %q, want %q", ml.name, "test")
	}
}

func TestGet_Unregistered(t *testing.T) {
	format := types.Format(998)

	got := Get(format)
	if got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)
	first := &mockLoader{name: "first"}
	second := &mockLoader{name: "second"}

	Register(format, first)
	Register(format, second)

	got := Get(format)
	ml, ok := got.(*mockLoader)
	if !ok {
		t.Fatal("Get() returned wrong loader type")
	}
	if ml.name != "second" {
		t.Errorf("Loader name = %q, want %q (should be overwritten)", ml.name, "second")
	}
}

func TestFormats_Sorted(t *testing.T) {
	Register(types.Format(996), &mockLoader{})
	Register(types.Format(995), &mockLoader{})

	formats := Formats()
	for i := 1; i < len(formats); i++ {
		if formats[i-1] >= formats[i] {
			t.Fatalf("Formats() not sorted: %v", formats)
		}
	}
}
