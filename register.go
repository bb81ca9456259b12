package vocset

// Pull in the format packages so every loader is registered before the
// first builder call.
import (
	_ "github.com/birdsonglab/vocset/internal/matfile"
	_ "github.com/birdsonglab/vocset/internal/npz"
)
