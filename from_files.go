package vocset

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/birdsonglab/vocset/internal/registry"
)

// FromArrayFiles assembles a VocalDataset from array files and annotations.
//
// format selects the registered array-archive loader. Exactly one
// addressing mode must be supplied via options: WithDir, WithFiles, or
// WithAnnotMap. A positional annotation list (WithAnnotations) may
// accompany the first two modes; the map mode already carries annotations.
//
// All validation happens before any file is loaded, in this order:
// unknown format (UnsupportedFormatError), mode exclusivity
// (ConflictingInputsError or MissingInputError), then annotation count
// (LengthMismatchError). Construction is atomic: if any file fails to
// load, the whole build fails with a LoadError carrying that path and no
// partial dataset is returned.
//
// Example:
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatMAT,
//	    vocset.WithDir("llb11/spect"),
//	    vocset.WithAnnotations(annots...),
//	)
func FromArrayFiles(format Format, opts ...Option) (*VocalDataset, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	loader := registry.Get(format)
	if loader == nil {
		return nil, &UnsupportedFormatError{
			Name:   format.String(),
			Reason: "no loader registered",
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	pairs, err := resolvePairs(format, options)
	if err != nil {
		return nil, err
	}

	vocs := make([]*Vocalization, len(pairs))
	for i, p := range pairs {
		voc := &Vocalization{SpectFile: p.path, Annot: p.annot}

		if !options.lazyLoad {
			spect, err := loadSpect(loader, p.path)
			if err != nil {
				return nil, err
			}
			voc.Spect = spect
		}

		vocs[i] = voc
	}

	return &VocalDataset{format: format, vocs: vocs}, nil
}

// pair is one resolved (array file, annotation) pairing.
type pair struct {
	annot *Annotation
	path  string
}

// loadSpect invokes a format loader for one path and wraps any failure in
// a LoadError.
func loadSpect(loader registry.Loader, path string) (*Spectrogram, error) {
	array, freqBins, timeBins, err := loader.Load(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	spect, err := NewSpectrogram(array, freqBins, timeBins)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return spect, nil
}

// resolvePairs turns the chosen addressing mode into an ordered list of
// (array file, annotation) pairs.
func resolvePairs(format Format, options *buildOptions) ([]pair, error) {
	if options.mapSet {
		// Sort map keys for determinism.
		keys := slices.Sorted(maps.Keys(options.annotMap))
		pairs := make([]pair, len(keys))
		for i, key := range keys {
			pairs[i] = pair{path: key, annot: options.annotMap[key]}
		}
		return pairs, nil
	}

	var paths []string
	switch {
	case options.dirSet:
		entries, err := os.ReadDir(options.dir)
		if err != nil {
			return nil, fmt.Errorf("scan array dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !format.MatchesPath(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(options.dir, entry.Name()))
		}
		slices.Sort(paths)

	case options.filesSet:
		paths = slices.Clone(options.files)
		seen := make(map[string]struct{}, len(paths))
		for _, path := range paths {
			if _, dup := seen[path]; dup {
				return nil, &DuplicateFileError{Path: path}
			}
			seen[path] = struct{}{}
		}
	}

	if options.annotsSet && len(options.annots) != len(paths) {
		return nil, &LengthMismatchError{
			Files:  len(paths),
			Annots: len(options.annots),
		}
	}

	pairs := make([]pair, len(paths))
	for i, path := range paths {
		p := pair{path: path}
		if options.annotsSet {
			p.annot = options.annots[i]
		}
		pairs[i] = p
	}
	return pairs, nil
}
