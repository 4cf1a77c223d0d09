// Package corpus downloads plain-text books from Project Gutenberg, caching
// them on disk, and strips the publisher boilerplate so only the actual text
// is fed to tokenizer training.
//
// Downloads are check-then-act: a file already present in the cache directory
// is read back without touching the network, so repeated runs start instantly
// and work offline.
package corpus

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/gutentok/gutentok"
	"github.com/pkg/errors"
)

// SessionId is unique and always created anew at the start of the program, and used during the life of the program.
var SessionId string

// panicf generates an error message and panics with it, in one function.
func panicf(format string, args ...any) {
	err := errors.Errorf(format, args...)
	panic(err)
}

func init() {
	sessionUUID, err := uuid.NewRandom()
	if err != nil {
		panicf("failed generating UUID for SessionId: %v", err)
	}
	SessionId = strings.Replace(sessionUUID.String(), "-", "", -1)
}

var (
	// DefaultDirCreationPerm is used when creating new cache subdirectories.
	DefaultDirCreationPerm = os.FileMode(0755)

	// DefaultFileCreationPerm is used when creating files inside the cache subdirectories.
	DefaultFileCreationPerm = os.FileMode(0644)
)

func getEnvOr(key, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// DefaultCacheDir for downloaded books.
//
// Its prefix is either `${XDG_CACHE_HOME}` if set, or `~/.cache` otherwise. Followed by `/gutentok/`.
// So typically: `~/.cache/gutentok/`.
func DefaultCacheDir() string {
	cacheDir := getEnvOr("XDG_CACHE_HOME", path.Join(os.Getenv("HOME"), ".cache"))
	return path.Join(cacheDir, "gutentok")
}

// httpUserAgent returns the user agent sent with download requests.
func httpUserAgent() string {
	return fmt.Sprintf("gutentok/%v; golang/%s; session_id/%s",
		gutentok.Version, runtime.Version(), SessionId)
}
