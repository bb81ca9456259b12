package vocset_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdsonglab/vocset"
)

func TestParseFormat(t *testing.T) {
	format, err := vocset.ParseFormat("mat")
	require.NoError(t, err)
	assert.Equal(t, vocset.FormatMAT, format)

	format, err = vocset.ParseFormat("NPZ")
	require.NoError(t, err)
	assert.Equal(t, vocset.FormatNPZ, format)

	_, err = vocset.ParseFormat("wav")
	var ufe *vocset.UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
}

func TestDetectFormat_NPZ(t *testing.T) {
	path := writeNPZ(t, t.TempDir(), "a.npz", 0)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	stat, err := f.Stat()
	require.NoError(t, err)

	format, err := vocset.DetectFormat(f, stat.Size(), path)
	require.NoError(t, err)
	assert.Equal(t, vocset.FormatNPZ, format)
}
