// Package core provides the foundational domain types and interfaces used by
// RAGMesh. It defines the core abstractions for:
//
//   - Records (embedded document chunks, the unit of retrieval)
//   - Messages (role-based conversation turns)
//   - Sessions (stateful conversational containers owning a vector store and
//     an append-only chat history)
//   - Results (scored retrieval hits, derived per query and never stored)
//   - The VectorStore contract implemented by concrete stores
//
// The package intentionally keeps implementation concerns (chunking,
// embedding providers, completion engines, concrete stores) out of scope,
// exposing small interfaces to enable custom backends and extensions.
package core
