// Package pkv opens a persistent key-value store for an application.
// The returned store satisfies the store.Store contract regardless of
// which engine backs it; on native targets the engine is chosen by
// Config.Backend, on js/wasm builds it is always browser
// localStorage.
package pkv

// Config identifies the application and selects a backend. The zero
// value is not usable: at least Application (for location resolution)
// or Path must be set.
type Config struct {
	// Qualifier is an optional reverse-domain component, e.g. "com".
	Qualifier string
	// Organization names the vendor, e.g. "acme".
	Organization string
	// Application names the program, e.g. "nav".
	Application string

	// Backend selects the engine: "bolt" (default), "sqlite" or "fs".
	// Ignored on js/wasm builds.
	Backend string
	// Path overrides the data directory resolved from the identity.
	// Ignored on js/wasm builds.
	Path string
}
