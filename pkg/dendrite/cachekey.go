package dendrite

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/toyz/dendrite/internal/paths"
)

// CacheKey captures every input that can influence a document's generated
// output: the normalized document path, the document text, the project
// options, the applicable ambient imports, and the generation mode.
//
// The contract is one-directional: equal keys mean a previously generated
// unit may be reused byte-for-byte. A change to any input (document text,
// any applicable imports file, options, or mode) produces a different key,
// so an options change invalidates every document without special-case
// logic. The imports hash is order-independent: it covers the set of entry
// content hashes, not their discovery order.
type CacheKey struct {
	Path    string
	Mode    Mode
	Content [32]byte
	Options [32]byte
	Imports [32]byte
}

// ComputeCacheKey builds the cache key for one generation request
func ComputeCacheKey(doc Document, opts Options, applicable []*ImportsFile, mode Mode) CacheKey {
	return CacheKey{
		Path:    paths.NormalizeSlash(doc.Path),
		Mode:    mode,
		Content: sha256.Sum256([]byte(doc.Text)),
		Options: hashOptions(opts),
		Imports: hashImportSet(applicable),
	}
}

// String returns the stable external form of the key, suitable as a map or
// cache index.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s|%s|%x|%x|%x", k.Path, k.Mode, k.Content, k.Options, k.Imports)
}

// hashOptions hashes the option fields with domain separators. The project
// root is normalized and the base type fallback applied first, so
// textually different but behaviorally identical options hash the same.
func hashOptions(opts Options) [32]byte {
	h := sha256.New()
	h.Write([]byte("ns:"))
	h.Write([]byte(opts.RootNamespace))
	h.Write([]byte{0})
	h.Write([]byte("root:"))
	h.Write([]byte(paths.NormalizeSlash(opts.ProjectRoot)))
	h.Write([]byte{0})
	h.Write([]byte("base:"))
	h.Write([]byte(baseTypeOrDefault(opts.DefaultBaseType)))

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// hashImportsFile hashes one entry's identity: declaring path plus raw text
func hashImportsFile(path, text string) [32]byte {
	h := sha256.New()
	h.Write([]byte("path:"))
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte("text:"))
	h.Write([]byte(text))

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// hashImportSet combines the entry hashes into one order-independent hash
func hashImportSet(entries []*ImportsFile) [32]byte {
	hashes := make([][32]byte, 0, len(entries))
	for _, entry := range entries {
		hashes = append(hashes, entry.hash)
	}
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i][:], hashes[j][:]) < 0
	})

	h := sha256.New()
	h.Write([]byte("imports:"))
	for _, entryHash := range hashes {
		h.Write(entryHash[:])
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
