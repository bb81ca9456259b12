package vocset

// Annotation is a pre-parsed, time-aligned annotation for one recording.
//
// Annotations are produced by an external parsing collaborator; vocset never
// parses annotation file formats itself. An annotation is identified by the
// source file it was parsed from and carries one label per annotated
// segment, with segment boundaries in parallel slices.
//
// Annotations are referenced, never copied: the same *Annotation may be
// shared by multiple vocalizations and reused across repeated builder calls.
type Annotation struct {
	// AnnotFile identifies the file the annotation was parsed from.
	AnnotFile string

	// Labels holds one label token per annotated segment.
	Labels []string

	// Onsets and Offsets hold segment boundaries in seconds, parallel
	// to Labels.
	Onsets  []float64
	Offsets []float64
}
