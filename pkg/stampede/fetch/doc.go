// Package fetch ships the default load collaborators: byte readers for
// local paths and for URLs. The URL reader retries transient transport
// faults with exponential backoff before surfacing a single tagged error
// to the engine.
package fetch
