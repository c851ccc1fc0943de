package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sharedcode/objectid"
)

// ToFilePathFunc formats a base path and ObjectID into the full filesystem path of the object.
type ToFilePathFunc func(basePath string, id objectid.ObjectID) string

// ToFilePath holds the global path formatting function.
// Applications may override this to control file placement.
var ToFilePath ToFilePathFunc = DefaultToFilePath

// DefaultToFilePath appends the 2/2/28 sharded path of id to basePath.
// A separator is added only if basePath does not already end with one. An empty
// basePath yields the relative sharded path.
func DefaultToFilePath(basePath string, id objectid.ObjectID) string {
	if basePath == "" {
		return id.Path()
	}
	if basePath[len(basePath)-1] == os.PathSeparator {
		return fmt.Sprintf("%s%s", basePath, id.Path())
	}
	return fmt.Sprintf("%s%c%s", basePath, os.PathSeparator, id.Path())
}

// FromFilePath is the inverse of DefaultToFilePath. p is made relative to basePath
// lexically and the remainder must be exactly the sharded path, see objectid.ParsePath.
func FromFilePath(basePath, p string) (objectid.ObjectID, error) {
	rel, err := filepath.Rel(basePath, p)
	if err != nil {
		return objectid.Nil, &objectid.Error{Code: objectid.MalformedPath, Err: err, Path: p}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return objectid.Nil, &objectid.Error{
			Code: objectid.MalformedPath,
			Err:  fmt.Errorf("not under base path %q", basePath),
			Path: p,
		}
	}
	id, err := objectid.ParsePath(rel)
	if err != nil {
		var oe *objectid.Error
		if errors.As(err, &oe) {
			oe.Path = p
		}
		return objectid.Nil, err
	}
	return id, nil
}
