//go:build js && wasm

package pkv

import (
	"pkv/internal/location"
	"pkv/pkg/store"
	"pkv/pkg/store/web"
)

// Open returns a browser localStorage store namespaced by the
// application identity. Backend and Path are ignored on this target.
func Open(cfg Config) (store.Store, error) {
	id := location.Identity{
		Qualifier:    cfg.Qualifier,
		Organization: cfg.Organization,
		Application:  cfg.Application,
	}
	return web.New(id.Prefix()), nil
}
