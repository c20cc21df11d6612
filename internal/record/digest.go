package record

import (
	"strconv"

	"github.com/zeebo/xxh3"
)

// Digest fingerprints a payload so repeated fetches can be correlated in logs.
func Digest(data []byte) string {
	return strconv.FormatUint(xxh3.Hash(data), 16)
}
