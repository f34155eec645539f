package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
)

// StdoutPath selects standard output as the record sink.
const StdoutPath = "-"

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers such as `head` close early and that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Output is the destination for converted records.
type Output struct {
	io.Writer
	path string
	file *os.File
	lock *flock.Flock
}

// Path returns the output file path, or StdoutPath.
func (o *Output) Path() string {
	return o.path
}

// OpenOutput returns stdout for "" or "-". Any other path is created (or
// truncated) while holding an exclusive "<path>.lock" so concurrent runs
// cannot interleave records into the same file.
func OpenOutput(path string, stdout io.Writer) (*Output, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutPath {
		return &Output{Writer: stdout, path: StdoutPath}, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output %s is being written by another process", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Output{Writer: file, path: path, file: file, lock: lock}, nil
}

// Close closes the output file and releases its lock. Closing stdout is a
// no-op.
func (o *Output) Close() error {
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	if o.lock != nil {
		if unlockErr := o.lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release output lock: %w", unlockErr)
		}
	}
	return err
}
