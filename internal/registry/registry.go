// Package registry manages format-specific loaders for array-archive types.
package registry

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/birdsonglab/vocset/internal/types"
)

// Loader is the interface all array-format loaders implement.
//
// A Loader is a pure function of a path: it performs no caching and has no
// side effects beyond reading the file, so callers may safely invoke it
// from multiple goroutines on different paths.
type Loader interface {
	// Load reads one array file and returns the spectrogram matrix
	// (frequency x time) together with its axis vectors.
	Load(path string) (array *mat.Dense, freqBins, timeBins []float64, err error)
}

// loaders maps formats to their loaders.
var loaders = make(map[types.Format]Loader)

// Register registers a loader for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, loader Loader) {
	loaders[format] = loader
}

// Get returns the loader for a given format.
// Returns nil if no loader is registered for the format.
func Get(format types.Format) Loader {
	return loaders[format]
}

// Formats returns the formats with a registered loader, sorted for
// deterministic error messages.
func Formats() []types.Format {
	fs := make([]types.Format, 0, len(loaders))
	for f := range loaders {
		fs = append(fs, f)
	}
	slices.Sort(fs)
	return fs
}
