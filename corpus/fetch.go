package corpus

import (
	"context"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path"
	"syscall"
	"time"

	"github.com/gutentok/gutentok/internal/files"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Fetch returns the text of the given source, downloading it if it is not yet
// in the cache directory.
//
// A failed download is a hard failure: no partial content is cached and the
// wrapped error should abort whatever training depends on the text.
func (f *Fetcher) Fetch(ctx context.Context, src Source) (string, error) {
	if src.URL == "" || src.Filename == "" {
		return "", errors.Errorf("source %q is missing its url or filename", src)
	}
	if err := os.MkdirAll(f.cacheDir, DefaultDirCreationPerm); err != nil {
		return "", errors.Wrapf(err, "while creating cache directory %q", f.cacheDir)
	}

	filePath := path.Join(f.cacheDir, src.Filename)
	if files.Exists(filePath) {
		if f.Verbosity >= 1 {
			log.Printf("[cache hit] loading local file %q", filePath)
		}
	} else {
		if f.Verbosity >= 1 {
			log.Printf("[network] downloading %q from %q", src, src.URL)
		}
		if err := f.lockedDownload(ctx, src.URL, filePath); err != nil {
			return "", errors.WithMessagef(err, "while fetching %q", src)
		}
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read cached file %q -- remove the file if you want to have it re-downloaded", filePath)
	}
	return string(content), nil
}

// lockedDownload url to the given filePath.
//
// If filePath exists, it is assumed to already have been correctly downloaded, and it will return immediately.
//
// It downloads the file to filePath+".downloading" and then atomically moves it to filePath.
//
// It uses a temporary filePath+".lock" to coordinate multiple processes/programs trying to download the same file at the same time.
func (f *Fetcher) lockedDownload(ctx context.Context, url, filePath string) error {
	if files.Exists(filePath) {
		return nil
	}

	// Checks whether context has already been cancelled, and exit immediately.
	if err := ctx.Err(); err != nil {
		return err
	}

	lockPath := filePath + ".lock"
	var mainErr error
	errLock := execOnFileLock(lockPath, func() {
		if files.Exists(filePath) {
			// Some concurrent other process already downloaded the file.
			return
		}

		var tmpFileClosed bool
		tmpPath := filePath + ".downloading"
		tmpFile, err := os.Create(tmpPath)
		if err != nil {
			mainErr = errors.Wrapf(err, "creating temporary file for download in %q", tmpPath)
			return
		}
		defer func() {
			// If we exit with an error, make sure to close and remove unfinished temporary file.
			if !tmpFileClosed {
				if err := tmpFile.Close(); err != nil {
					log.Printf("Failed closing temporary file %q: %v", tmpPath, err)
				}
				if err := os.Remove(tmpPath); err != nil {
					log.Printf("Failed removing temporary file %q: %v", tmpPath, err)
				}
			}
		}()

		mainErr = f.download(ctx, url, tmpFile)
		if mainErr != nil {
			mainErr = errors.WithMessagef(mainErr, "while downloading %q to %q", url, tmpPath)
			return
		}

		// Download succeeded, move to our target location.
		tmpFileClosed = true
		if err := tmpFile.Close(); err != nil {
			mainErr = errors.Wrapf(err, "failed to close temporary download file %q", tmpPath)
			return
		}
		if err := os.Rename(tmpPath, filePath); err != nil {
			mainErr = errors.Wrapf(err, "failed to move downloaded file %q to %q", tmpPath, filePath)
			return
		}

		// File already exists, so we no longer need the lock file.
		if err := os.Remove(lockPath); err != nil {
			log.Printf("Warning: error removing lock file %q: %+v", lockPath, err)
		}
	})
	if mainErr != nil {
		return mainErr
	}
	if errLock != nil {
		return errors.WithMessagef(errLock, "while locking %q to download %q", lockPath, url)
	}
	return nil
}

// download makes the HTTP GET request and streams the body to w, optionally
// reporting progress on the terminal.
func (f *Fetcher) download(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to create request for %q", url)
	}
	req.Header.Set("User-Agent", httpUserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed request to %q", url)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("request to %q failed with status %q", url, resp.Status)
	}

	if f.useProgressBar {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
		defer func() { _ = bar.Close() }()
		w = io.MultiWriter(w, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrapf(err, "failed to download %q", url)
	}
	return nil
}

// execOnFileLock opens the lockPath file (or creates if it doesn't yet exist), locks it, and executes the function.
// If the lockPath is already locked, it polls with a 1 to 2 seconds period (randomly), until it acquires the lock.
//
// The lockPath is not removed. It's safe to remove it from the given fn, if one knows that no new calls to
// execOnFileLock with the same lockPath is going to be made.
func execOnFileLock(lockPath string, fn func()) (err error) {
	var lockFile *os.File
	lockFile, err = os.OpenFile(lockPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, DefaultFileCreationPerm)
	if err != nil {
		err = errors.Wrapf(err, "while locking %q", lockPath)
		return
	}
	defer func() {
		if err := lockFile.Close(); err != nil {
			log.Printf("failed to close lock file %q", lockPath)
		}
	}()

	for {
		err = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err == nil {
			break
		}
		if !errors.Is(err, syscall.EAGAIN) {
			err = errors.Wrapf(err, "while locking %q", lockPath)
			return err
		}

		// Wait from 1 to 2 seconds.
		time.Sleep(time.Millisecond * time.Duration(1000+rand.Intn(1000)))
	}

	// Setup clean up in a deferred function, so it happens even if `fn()` panics.
	defer func() {
		if err == nil {
			err = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
			if err != nil {
				err = errors.Wrapf(err, "unlocking file %q", lockPath)
			}
		}
	}()

	// We got the lock, run the function.
	fn()

	return
}
