// Package session contains the process-local session registry used by the
// RAGMesh façade. Each session owns its vector store and chat history
// (core.Session); the registry only tracks lifetimes, it does not persist
// anything beyond the process.
package session
