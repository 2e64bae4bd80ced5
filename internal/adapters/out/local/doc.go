// Package local wires the inter-component ports to handlers running in the
// same process. Each call still runs in its own transaction, so nothing
// spans components.
package local
