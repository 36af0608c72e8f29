package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/rapo/cli/internal/errors"
	"github.com/rapo/cli/internal/output"
)

// HandleCancel prints the cancellation notice for a CancelError to w and
// turns it into an already-printed successful exit. Other errors are
// returned unchanged.
func HandleCancel(w io.Writer, err error) error {
	var cancelErr *oerrors.CancelError
	if !errors.As(err, &cancelErr) {
		return err
	}
	fmt.Fprintln(w, output.FormatCancel(cancelErr.Message))
	return &oerrors.ExitError{Code: oerrors.ExitSuccess, Err: err, Printed: true}
}

// ExitCode returns the process exit code for err and whether the error
// still needs to be reported.
func ExitCode(err error) (code int, report bool) {
	if err == nil {
		return oerrors.ExitSuccess, false
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, !exitErr.Printed
	}
	return oerrors.ExitCodeFromError(err), true
}

// PrintError reports an unhandled error the way the CLI always has.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, "An error occurred:", err)
}
