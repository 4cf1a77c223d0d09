package corpus

import (
	"log"
	"net/http"
	"path"
	"time"

	"github.com/gutentok/gutentok/internal/files"
)

// Fetcher downloads and caches book files. Create it with New.
type Fetcher struct {
	// Verbosity: 0 for quiet operation; 1 for information about cache hits and downloads; 2 and higher for debugging.
	Verbosity int

	client         *http.Client
	cacheDir       string
	useProgressBar bool
}

// New creates a Fetcher using the default cache directory, see DefaultCacheDir.
//
// The default HTTP client times out after 30 seconds; replace it with
// Fetcher.WithHTTPClient if needed.
func New() *Fetcher {
	return &Fetcher{
		Verbosity:      1,
		client:         &http.Client{Timeout: 30 * time.Second},
		cacheDir:       DefaultCacheDir(),
		useProgressBar: true,
	}
}

// WithCacheDir sets the cacheDir to the given directory. A leading "~" is
// expanded to the user's home directory.
//
// The default is given by DefaultCacheDir: `${XDG_CACHE_HOME}/gutentok` if set, or `~/.cache/gutentok` otherwise.
func (f *Fetcher) WithCacheDir(cacheDir string) *Fetcher {
	newCacheDir, err := files.ReplaceTildeInDir(cacheDir)
	if err == nil {
		f.cacheDir = path.Clean(newCacheDir)
	} else {
		log.Printf("Failed to resolve directory for %q: %+v", cacheDir, err)
	}
	return f
}

// WithHTTPClient sets the HTTP client used for downloads.
func (f *Fetcher) WithHTTPClient(client *http.Client) *Fetcher {
	f.client = client
	return f
}

// WithProgressBar configures the usage of a progress bar during download. Defaults to true.
func (f *Fetcher) WithProgressBar(useProgressBar bool) *Fetcher {
	f.useProgressBar = useProgressBar
	return f
}

// CacheDir returns the directory where downloaded books are stored.
func (f *Fetcher) CacheDir() string {
	return f.cacheDir
}
