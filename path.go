package objectid

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Segments splits the hex form into [0,2), [2,4) and [4,32).
func (id ObjectID) Segments() [3]string {
	s := id.Hex()
	return [3]string{s[:firstShard], s[firstShard:secondShard], s[secondShard:]}
}

// Path returns the sharded relative path using the OS separator, e.g. 01/23/456789abcdef0123456789abcdef.
func (id ObjectID) Path() string {
	s := id.Segments()
	return filepath.Join(s[0], s[1], s[2])
}

// Key returns the sharded path with '/' separators on every OS, for object store keys.
func (id ObjectID) Key() string {
	s := id.Segments()
	return s[0] + "/" + s[1] + "/" + s[2]
}

// FromPath decodes p by concatenating its normal components and parsing the result.
// Root markers, "." and ".." are skipped, not rejected; use ParsePath to reject them.
// It never touches the filesystem.
func FromPath(p string) (ObjectID, error) {
	var sb strings.Builder
	sb.Grow(hexLen)
	for _, c := range components(p) {
		if !isNormal(c) {
			continue
		}
		if !utf8.ValidString(c) {
			return Nil, &Error{Code: NonUTF8, Path: p}
		}
		sb.WriteString(c)
	}
	u, err := parseSimple(sb.String())
	if err != nil {
		return Nil, &Error{Code: InvalidUUID, Err: err, Path: p}
	}
	return ObjectID(u), nil
}

// ParsePath is the strict form of FromPath. The path must be exactly three normal
// components of lengths 2, 2 and 28, relative, with no "." or ".." anywhere.
func ParsePath(p string) (ObjectID, error) {
	if filepath.VolumeName(p) != "" || filepath.IsAbs(p) {
		return Nil, &Error{Code: MalformedPath, Path: p}
	}
	parts := components(p)
	for _, c := range parts {
		if isNormal(c) && !utf8.ValidString(c) {
			return Nil, &Error{Code: NonUTF8, Path: p}
		}
	}
	want := [3]int{firstShard, secondShard - firstShard, hexLen - secondShard}
	if len(parts) != len(want) {
		return Nil, &Error{Code: MalformedPath, Path: p}
	}
	for i, c := range parts {
		if !isNormal(c) || len(c) != want[i] {
			return Nil, &Error{Code: MalformedPath, Path: p}
		}
	}
	u, err := parseSimple(strings.Join(parts, ""))
	if err != nil {
		return Nil, &Error{Code: InvalidUUID, Err: err, Path: p}
	}
	return ObjectID(u), nil
}

// components splits p on both '/' and the OS separator, after dropping any volume name.
// Empty entries stand for the root and for doubled separators.
func components(p string) []string {
	p = p[len(filepath.VolumeName(p)):]
	return strings.Split(filepath.ToSlash(p), "/")
}

func isNormal(c string) bool {
	return c != "" && c != "." && c != ".."
}
