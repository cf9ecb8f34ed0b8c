// Package model defines the completion engine abstraction used by the chat
// engine, along with a mock implementation for tests and examples. Provider
// adapters live in subpackages (model/openai, model/anthropic) and translate
// the normalized Request/Response structures into vendor SDK calls.
package model
