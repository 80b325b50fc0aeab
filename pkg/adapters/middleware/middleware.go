// Package middleware wraps a ComponentStore to add behavior on the way
// to the backend, such as encrypting or masking pre-filled field values.
package middleware

import "github.com/roost-chat/roost/pkg/ports"

// Middleware allows wrapping a ComponentStore to add behavior.
type Middleware func(ports.ComponentStore) ports.ComponentStore

// Chain applies middlewares around store. The first middleware becomes
// the outermost layer.
func Chain(store ports.ComponentStore, mws ...Middleware) ports.ComponentStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
