package vocset

// Option configures behavior when building a dataset.
//
// Options use the functional options pattern. Addressing modes (WithDir,
// WithFiles, WithAnnotMap) are mutually exclusive; exactly one must be
// supplied.
//
// Example:
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatMAT,
//	    vocset.WithDir("llb11/spect"),
//	    vocset.WithLazyLoad(),
//	)
type Option func(*buildOptions)

// buildOptions holds configuration for one builder call.
//
// The set flags record which options were supplied, so that an explicitly
// empty list is still treated as a chosen addressing mode.
type buildOptions struct {
	dir      string
	files    []string
	annotMap map[string]*Annotation
	annots   []*Annotation

	dirSet    bool
	filesSet  bool
	mapSet    bool
	annotsSet bool
	lazyLoad  bool
}

// defaultOptions returns the default configuration: no addressing mode,
// eager loading.
func defaultOptions() *buildOptions {
	return &buildOptions{}
}

// validate enforces the mutual-exclusivity rules before any I/O happens.
func (o *buildOptions) validate() error {
	var modes []string
	if o.dirSet {
		modes = append(modes, "WithDir")
	}
	if o.filesSet {
		modes = append(modes, "WithFiles")
	}
	if o.mapSet {
		modes = append(modes, "WithAnnotMap")
	}

	if len(modes) == 0 {
		return &MissingInputError{}
	}
	if len(modes) > 1 {
		return &ConflictingInputsError{First: modes[0], Second: modes[1]}
	}
	// The map already carries annotations; a separate positional list is
	// ambiguous and rejected, not silently ignored.
	if o.mapSet && o.annotsSet {
		return &ConflictingInputsError{First: "WithAnnotMap", Second: "WithAnnotations"}
	}

	return nil
}

// WithDir selects directory mode: dir is scanned for array files whose
// extension matches the requested format, sorted lexicographically by
// filename.
//
// Example:
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatMAT,
//	    vocset.WithDir("llb11/spect"),
//	)
func WithDir(dir string) Option {
	return func(o *buildOptions) {
		o.dir = dir
		o.dirSet = true
	}
}

// WithFiles selects file-list mode: the given paths are used in
// caller-given order. A path appearing twice fails with DuplicateFileError.
//
// Example:
//
//	dataset, err := vocset.FromArrayFiles(vocset.FormatNPZ,
//	    vocset.WithFiles("a.npz", "b.npz"),
//	)
func WithFiles(paths ...string) Option {
	return func(o *buildOptions) {
		o.files = paths
		o.filesSet = true
	}
}

// WithAnnotMap selects map mode: each key is an array-file path and each
// value its annotation. Map keys carry no order, so entries are processed
// in lexicographic key order for determinism.
//
// WithAnnotMap cannot be combined with WithAnnotations.
func WithAnnotMap(m map[string]*Annotation) Option {
	return func(o *buildOptions) {
		o.annotMap = m
		o.mapSet = true
	}
}

// WithAnnotations supplies a positional annotation list for directory or
// file-list mode: the i-th annotation is paired with the i-th resolved
// array file, and the list length must equal the resolved file count.
//
// Pairing is strictly by position, never by content. In directory mode the
// file list is sorted by filename before pairing, so the annotations must
// be supplied in that same sorted order — there is no cross-check against
// file contents.
func WithAnnotations(annots ...*Annotation) Option {
	return func(o *buildOptions) {
		o.annots = annots
		o.annotsSet = true
	}
}

// WithLazyLoad defers loading of array payloads: each entry is built with
// only its path and annotation, and Spect is left nil until
// VocalDataset.LoadSpects runs the second pass.
//
// Lazy and eager builds produce datasets with identical shape, order, and
// pairing. Use lazy loading for memory-bounded two-phase workflows over
// large collections.
func WithLazyLoad() Option {
	return func(o *buildOptions) {
		o.lazyLoad = true
	}
}
