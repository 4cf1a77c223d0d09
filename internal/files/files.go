// Package files implements generic file tools missing from the standard library.
package files

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Exists returns true if file or directory exists.
func Exists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// ReplaceTildeInDir by the user's home directory. Returns dir if it doesn't start with "~".
//
// Only the current user's home is supported: `~other_user/...` returns an error.
func ReplaceTildeInDir(dir string) (string, error) {
	if dir == "" || dir[0] != '~' {
		return dir, nil
	}
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, errors.Errorf("cannot expand home directory of another user in path %q", dir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return dir, errors.Wrapf(err, "failed to find home directory for path %q", dir)
	}
	return path.Join(homeDir, dir[1:]), nil
}
