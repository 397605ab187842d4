package karte

import (
	"fmt"

	"github.com/phanxgames/karte/container"
)

// Resourcer loads and caches glyph-sheet textures by path. The registry
// owns its textures: the backing hashmap carries a release callback, so a
// recursive free tears every cached texture down with it.
type Resourcer struct {
	textures *container.Hashmap[*Texture]
	load     func(path string) (*Texture, error)
}

// NewResourcer creates an empty registry.
func NewResourcer() *Resourcer {
	return &Resourcer{
		textures: container.NewHashmap[*Texture](container.HashmapInitialBaseSize,
			func(t *Texture) { t.Free() }),
		load: LoadTexture,
	}
}

// Texture returns the sheet at path, loading and caching it on first
// request.
func (r *Resourcer) Texture(path string) (*Texture, error) {
	if tex, ok := r.textures.Search(path); ok {
		return tex, nil
	}

	tex, err := r.load(path)
	if err != nil {
		return nil, fmt.Errorf("resourcer: %w", err)
	}
	r.textures.Insert(path, tex)
	return tex, nil
}

// Unload drops the texture at path from the registry, releasing it.
func (r *Resourcer) Unload(path string) {
	r.textures.Delete(path)
}

// Count returns the number of cached textures.
func (r *Resourcer) Count() int {
	return r.textures.Count()
}

// Free releases every cached texture and the registry itself.
func (r *Resourcer) Free() {
	r.textures.Free(true)
}
