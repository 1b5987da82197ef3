package safe

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
)

// Close closes the resource and only logs a failure. io.EOF is ignored.
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Remove removes a leftover file, such as a temporary artifact that was not
// renamed into place. A file that no longer exists is not reported.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("Fail to remove file", slog.Any("error", err), slog.String("path", path))
	}
}
