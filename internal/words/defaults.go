package words

import (
	_ "embed"
)

// Default word list, one word per line. Used when no custom list is
// configured.
//
//go:embed defaults/words.txt
var defaultWords []byte
