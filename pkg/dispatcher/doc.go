// Package dispatcher is the core of the Magpie control plane: it owns
// the persistent stores, the fleet registry, the source catalog, and
// the result bus, and implements task creation, assignment, recovery,
// and cancellation on top of them.
package dispatcher
