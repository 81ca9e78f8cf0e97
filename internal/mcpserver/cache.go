package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/csift/internal/extract"
)

// resultCache memoizes extraction results keyed by path plus content hash,
// so repeated tool calls against unchanged files skip re-parsing.
type resultCache struct {
	cache otter.Cache[string, *extract.Summary]
}

func newResultCache(capacity int) (*resultCache, error) {
	cache, err := otter.MustBuilder[string, *extract.Summary](capacity).Build()
	if err != nil {
		return nil, err
	}
	return &resultCache{cache: cache}, nil
}

func (rc *resultCache) key(path string, source []byte) string {
	sum := sha256.Sum256(source)
	return path + "#" + hex.EncodeToString(sum[:])
}

func (rc *resultCache) get(key string) (*extract.Summary, bool) {
	return rc.cache.Get(key)
}

func (rc *resultCache) set(key string, summary *extract.Summary) {
	rc.cache.Set(key, summary)
}

func (rc *resultCache) close() {
	rc.cache.Close()
}
