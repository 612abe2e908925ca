package search

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/jonwraymond/itemsearch/catalog"
)

// computeFingerprint generates a stable hash of the entry slice.
// The fingerprint changes when entry content changes, enabling
// efficient cache invalidation for the Bleve index.
func computeFingerprint(entries []catalog.Entry) string {
	h := sha256.New()

	for _, e := range entries {
		h.Write([]byte(e.ID()))
		h.Write([]byte{0}) // separator

		h.Write([]byte(e.Name))
		h.Write([]byte{0})
		h.Write([]byte(e.Namespace))
		h.Write([]byte{0})
		h.Write([]byte(e.Description))
		h.Write([]byte{0})

		// Tags are sorted for order-independence, then joined with a separator.
		sortedTags := slices.Clone(e.Tags)
		slices.Sort(sortedTags)
		h.Write([]byte(strings.Join(sortedTags, "\x01")))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
