package vocset

import (
	"context"
	"iter"
	"maps"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/birdsonglab/vocset/internal/registry"
)

// VocalDataset is an ordered collection of vocalizations, constructed once
// and atomically by FromArrayFiles and immutable afterward.
//
// Order is the discovery/input order: sorted filesystem order for directory
// mode, caller-given order for file-list mode, and lexicographic key order
// for map mode. Every entry's SpectFile is unique within the dataset.
type VocalDataset struct {
	vocs   []*Vocalization
	format Format
}

// Len returns the number of vocalizations in the dataset.
func (d *VocalDataset) Len() int {
	return len(d.vocs)
}

// Format returns the array-archive format the dataset was built from.
func (d *VocalDataset) Format() Format {
	return d.format
}

// Voc returns the i-th vocalization in stored order.
func (d *VocalDataset) Voc(i int) *Vocalization {
	return d.vocs[i]
}

// Vocalizations returns an iterator over the dataset in stored order.
//
// The iterator is restartable and has no side effects; ranging over it
// twice yields the same sequence.
//
// Example:
//
//	for voc := range dataset.Vocalizations() {
//	    fmt.Println(voc.SpectFile)
//	}
func (d *VocalDataset) Vocalizations() iter.Seq[*Vocalization] {
	return func(yield func(*Vocalization) bool) {
		for _, voc := range d.vocs {
			if !yield(voc) {
				return
			}
		}
	}
}

// Files returns the source array-file paths in stored order.
func (d *VocalDataset) Files() []string {
	files := make([]string, len(d.vocs))
	for i, voc := range d.vocs {
		files[i] = voc.SpectFile
	}
	return files
}

// Labels returns the distinct label tokens across all entries that have an
// annotation, sorted for determinism. Entries without an annotation
// contribute nothing.
func (d *VocalDataset) Labels() []string {
	set := make(map[string]struct{})
	for _, voc := range d.vocs {
		if voc.Annot == nil {
			continue
		}
		for _, label := range voc.Annot.Labels {
			set[label] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// TotalDuration returns the summed duration in seconds of all loaded
// spectrograms. Entries whose payload has not been loaded contribute 0.
func (d *VocalDataset) TotalDuration() float64 {
	var total float64
	for _, voc := range d.vocs {
		total += voc.Duration()
	}
	return total
}

// LoadSpects loads the deferred array payloads of a lazily built dataset.
//
// This is the second pass of the two-phase workflow enabled by
// WithLazyLoad. Files are loaded in parallel using up to runtime.NumCPU()
// goroutines; the per-file loaders are pure functions of a path, which is
// what makes this safe. Entries already loaded are left untouched.
//
// Loading is all-or-nothing: if any file fails, no entry is modified and
// the error carries the failing path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	if err := dataset.LoadSpects(ctx); err != nil {
//	    return err
//	}
func (d *VocalDataset) LoadSpects(ctx context.Context) error {
	loader := registry.Get(d.format)
	if loader == nil {
		return &UnsupportedFormatError{
			Name:   d.format.String(),
			Reason: "no loader registered",
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	loaded := make([]*Spectrogram, len(d.vocs))

	for i, voc := range d.vocs {
		if voc.Spect != nil {
			continue
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			spect, err := loadSpect(loader, voc.SpectFile)
			if err != nil {
				return err
			}

			loaded[i] = spect
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, spect := range loaded {
		if spect != nil {
			d.vocs[i].Spect = spect
		}
	}
	return nil
}
