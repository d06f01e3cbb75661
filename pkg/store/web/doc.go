// Package web implements store.Store on the browser's localStorage
// API, for js/wasm builds only. Keys are namespaced with a prefix
// derived from the application identity, so multiple applications can
// share one origin. Values are serialized as JSON text. Durability
// and isolation are whatever the host browser provides.
package web
