// Package store defines the backing-store contracts for extended-key
// resolution, plus small implementations useful out of the box.
//
// Responsibilities:
//   - Reader is the read side the resolution path depends on; it is the only
//     surface with extended-key relevance.
//   - Store adds ordinary mutable-mapping operations with no extended-key
//     semantics of their own.
//   - Memory is an RWMutex-guarded map. Env is a read-only view of process
//     environment variables. Layered tries readers in order, first hit wins.
package store
