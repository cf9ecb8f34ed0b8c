// Package index orchestrates document ingestion: extraction, chunking,
// embedding and vector store population. Each document in a batch is
// processed independently so one unreadable file never aborts the others, and
// every outcome is reported per document.
package index
