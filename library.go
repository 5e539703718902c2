package texel

import (
	"path/filepath"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/texel/internal/cache"
)

// Library shares loaded textures between callers.
//
// A scene usually references the same image file from several materials.
// Library.Load decodes each path once, keeps the most recently used
// textures, and collapses concurrent loads of one path into a single decode.
// Failed loads are not remembered.
//
// Library is safe for concurrent use.
type Library struct {
	opts     []LoadOption
	textures *cache.Cache[string, *Texture]
	inflight singleflight.Group
}

// LibraryStats reports Library usage.
type LibraryStats struct {
	Textures  int    // currently held
	Hits      uint64 // loads served from memory
	Misses    uint64 // loads that went to the decoder
	Evictions uint64
}

// NewLibrary returns a library holding at most limit textures.
// A limit of 0 keeps every texture. The options apply to every load.
func NewLibrary(limit int, opts ...LoadOption) *Library {
	return &Library{
		opts:     opts,
		textures: cache.New[string, *Texture](limit),
	}
}

// Load returns the texture at path, decoding it on first use.
// Paths are compared after filepath.Clean. Errors are those of Load.
func (l *Library) Load(path string) (*Texture, error) {
	key := filepath.Clean(path)
	if tex, ok := l.textures.Get(key); ok {
		return tex, nil
	}

	v, err, _ := l.inflight.Do(key, func() (any, error) {
		// Another flight may have finished between Get and Do.
		if tex, ok := l.textures.Peek(key); ok {
			return tex, nil
		}
		tex, err := Load(path, l.opts...)
		if err != nil {
			return nil, err
		}
		l.textures.Set(key, tex)
		return tex, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Texture), nil
}

// Forget drops path from the library. It reports whether it was held.
func (l *Library) Forget(path string) bool {
	return l.textures.Delete(filepath.Clean(path))
}

// Purge drops every held texture.
func (l *Library) Purge() {
	l.textures.Clear()
}

// Stats returns usage counters.
func (l *Library) Stats() LibraryStats {
	st := l.textures.Stats()
	return LibraryStats{
		Textures:  st.Len,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
	}
}
