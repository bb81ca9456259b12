package vocset

// Vocalization is one annotated recording unit: a reference to a source
// array file, the spectrogram loaded from it (when loaded), and the
// annotation associated with it (when one was supplied).
//
// Vocalizations are created exactly once by the dataset builder and never
// mutated afterward, except for the sanctioned second loading pass
// (VocalDataset.LoadSpects) filling in a deferred Spect.
type Vocalization struct {
	// SpectFile is the path of the source array file. Never empty.
	SpectFile string

	// Spect is the spectrogram loaded from SpectFile, or nil when loading
	// was deferred.
	Spect *Spectrogram

	// Annot is the annotation for this recording, or nil when none was
	// supplied.
	Annot *Annotation
}

// Loaded reports whether the array payload has been loaded.
func (v *Vocalization) Loaded() bool {
	return v.Spect != nil
}

// Duration returns the duration in seconds covered by the spectrogram,
// or 0 when the payload has not been loaded.
func (v *Vocalization) Duration() float64 {
	if v.Spect == nil {
		return 0
	}
	return v.Spect.Duration()
}
