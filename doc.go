// Package objectid maps a 128-bit object identifier to the sharded relative path
// an object store keeps it under, and back.
//
// The layout is {2 hex}/{2 hex}/{28 hex}: the 32 lowercase hex digits of the id,
// split after the second and fourth digit. For example
//
//	0123456789abcdef0123456789abcdef <-> 01/23/456789abcdef0123456789abcdef
//
// Two decoders are provided. FromPath concatenates the normal components of any
// path and parses the result, skipping root, "." and ".." components. ParsePath
// accepts only the exact three segment shape and reports anything else as
// MalformedPath. Neither one touches the filesystem.
//
// Base path handling for blob stores lives in subpackage fs.
package objectid
