package vocset

import (
	"gonum.org/v1/gonum/mat"
)

// Spectrogram is one time-frequency array together with its axis metadata.
//
// Spectrograms are constructed only by format loaders when array data is
// requested; a deferred-load Vocalization simply has no Spectrogram yet.
type Spectrogram struct {
	// Array holds the spectrogram values, frequency x time.
	Array *mat.Dense

	// FreqBins holds the center frequency of each row, in Hz.
	FreqBins []float64

	// TimeBins holds the time offset of each column, in seconds.
	TimeBins []float64
}

// NewSpectrogram wraps an array and its axis vectors, validating that the
// axis lengths match the array dimensions.
func NewSpectrogram(array *mat.Dense, freqBins, timeBins []float64) (*Spectrogram, error) {
	rows, cols := array.Dims()
	if rows != len(freqBins) || cols != len(timeBins) {
		return nil, &ShapeError{
			Rows:     rows,
			Cols:     cols,
			FreqBins: len(freqBins),
			TimeBins: len(timeBins),
		}
	}

	return &Spectrogram{
		Array:    array,
		FreqBins: freqBins,
		TimeBins: timeBins,
	}, nil
}

// TimeBinDur returns the step between consecutive time bins, in seconds.
// Returns 0 when the spectrogram has fewer than two time bins.
func (s *Spectrogram) TimeBinDur() float64 {
	if len(s.TimeBins) < 2 {
		return 0
	}
	return s.TimeBins[1] - s.TimeBins[0]
}

// Duration returns the time span covered by the spectrogram in seconds:
// the count of time bins times the time-bin step.
func (s *Spectrogram) Duration() float64 {
	return float64(len(s.TimeBins)) * s.TimeBinDur()
}
