package report

import (
	"errors"
	"fmt"
	"io"
)

// StdoutTarget is the only output target the CLI accepts
const StdoutTarget = "-"

// ErrUnsupportedOutputTarget is returned for any output target other than stdout
var ErrUnsupportedOutputTarget = errors.New("unsupported output target")

// OpenSink resolves an output target to a writer.
// Only stdout is supported; redirect with a pipe to write a file, e.g.
// git-time-extractor report ./ > my_result.csv
func OpenSink(target string, stdout io.Writer) (io.Writer, error) {
	if target == "" || target == StdoutTarget {
		return stdout, nil
	}
	return nil, fmt.Errorf("%w: %s (use a pipe to write a file, e.g. git-time-extractor report ./ > result.csv)",
		ErrUnsupportedOutputTarget, target)
}
