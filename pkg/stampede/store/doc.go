// Package store ships the default persistence collaborators: an atomic
// disk writer with an exists-based skip check, and equivalent adapters
// over gocloud.dev blob buckets for portable destinations.
//
// Both writers are safe under concurrent invocation against an identical
// destination: the disk writer renames a unique temp file into place, and
// blob writes only become visible once committed.
package store
