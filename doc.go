// Package vocset assembles collections of bioacoustic spectrogram files and
// externally produced annotations into uniform, ordered in-memory datasets.
//
// vocset is the dataset-construction layer of a song-learning pipeline: it
// matches array-archive files (saved spectrograms) to time-aligned
// annotations, validates the pairing, and returns a VocalDataset ready for
// a downstream training stage.
//
// # Quick Start
//
// Building a dataset from a directory of MAT-files:
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatMAT,
//	    vocset.WithDir("llb11/spect"),
//	    vocset.WithAnnotations(annots...),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for voc := range dataset.Vocalizations() {
//	    fmt.Printf("%s: %.2fs\n", voc.SpectFile, voc.Duration())
//	}
//
// # Addressing Modes
//
// Exactly one of three mutually exclusive modes tells the builder which
// array files to include:
//
//   - WithDir scans a directory for files of the requested format and sorts
//     them lexicographically by filename.
//   - WithFiles uses an explicit list of paths in caller-given order.
//   - WithAnnotMap uses an explicit file-to-annotation map, ordered by key.
//
// Supplying more than one mode, or combining WithAnnotMap with a positional
// WithAnnotations list, fails with ConflictingInputsError before any file
// is touched.
//
// # Eager and Lazy Loading
//
// By default every resolved file is loaded during construction. With
// WithLazyLoad the array payloads are deferred: each entry carries only its
// path and annotation, and LoadSpects performs the second pass later. Both
// policies produce a dataset with identical shape, order, and pairing.
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatNPZ,
//	    vocset.WithFiles(paths...),
//	    vocset.WithLazyLoad(),
//	)
//	// ... decide how much memory to spend, then:
//	err = dataset.LoadSpects(ctx)
//
// # Supported Formats
//
//   - MAT: MATLAB Level-5 MAT-files (variables "s", "f", "t")
//   - NPZ: NumPy archives (members "s"/"spect", "f"/"freq_bins", "t"/"time_bins")
//
// Format names from configuration files are converted with ParseFormat;
// DetectFormat sniffs a file's magic bytes.
//
// # Error Handling
//
// Construction is atomic: any failure aborts the whole build and no partial
// dataset is returned. Errors are typed — UnsupportedFormatError,
// ConflictingInputsError, LengthMismatchError, and LoadError (which carries
// the failing path and wraps the underlying cause) — so callers can branch
// with errors.As.
package vocset
