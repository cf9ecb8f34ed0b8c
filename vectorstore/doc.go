// Package vectorstore contains concrete VectorStore implementations. The
// store interface and Record type reside in the core package. Import
// github.com/hupe1980/ragmesh/core and depend on core.VectorStore in your
// code; select an implementation (like the in-memory store below) at wiring
// time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends (vector databases, disk indexes, etc.) to be added without
// introducing dependency cycles.
package vectorstore
