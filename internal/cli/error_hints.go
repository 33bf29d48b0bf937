package cli

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/resdev/eclman/internal/manual"
	"github.com/resdev/eclman/internal/viewer"
)

// Error codes shared by the manual commands.
const (
	codeEclpathUnset   = "ECLPATH_UNSET"
	codeManualNotFound = "MANUAL_NOT_FOUND"
	codeNoViewer       = "NO_VIEWER"
	codeLaunchFailed   = "LAUNCH_FAILED"
	codeTimeout        = "TIMEOUT"
)

// classifyManualError maps errors from the open workflow to a CLIError.
func classifyManualError(err error) *CLIError {
	var notFound *manual.ManualNotFoundError
	switch {
	case errors.As(err, &notFound) && notFound.RootUnset:
		return &CLIError{
			Code:    codeEclpathUnset,
			Message: notFound.Error(),
			Hint:    "ECLPATH is not set; export it as the directory holding one folder per release, or set eclpath in the config file",
		}
	case errors.Is(err, manual.ErrRootUnset):
		return &CLIError{
			Code:    codeEclpathUnset,
			Message: err.Error(),
			Hint:    "Export ECLPATH as the directory holding one folder per release, or set eclpath in the config file",
		}
	case errors.As(err, &notFound):
		return &CLIError{
			Code:    codeManualNotFound,
			Message: notFound.Error(),
			Hint:    "Run `eclman versions` to see which releases have manuals; pass -v to pick one",
		}
	case errors.Is(err, viewer.ErrNoViewer):
		return &CLIError{
			Code:    codeNoViewer,
			Message: err.Error(),
			Hint:    "Install one of the viewers listed by `eclman viewers` or add yours to the viewers config list",
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &CLIError{
			Code:    codeTimeout,
			Message: err.Error(),
			Hint:    "Raise release.timeout in the config file",
		}
	default:
		return &CLIError{
			Code:    codeLaunchFailed,
			Message: err.Error(),
			Hint:    hintForTooling(err),
		}
	}
}

func hintForTooling(err error) string {
	if err == nil {
		return ""
	}
	if isCommandNotFound(err, "eclrun") {
		return "eclrun not found on PATH; the default release is used instead (then `eclman doctor`)"
	}
	if errors.Is(err, os.ErrPermission) {
		return "Viewer is not executable by the current user"
	}
	return "Run `eclman doctor` for diagnostics"
}

func isCommandNotFound(err error, name string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, exec.ErrNotFound) && name == "" {
		return true
	}

	var ee *exec.Error
	if errors.As(err, &ee) && strings.EqualFold(ee.Name, name) && errors.Is(ee.Err, exec.ErrNotFound) {
		return true
	}

	var pe *os.PathError
	if errors.As(err, &pe) && errors.Is(pe.Err, os.ErrNotExist) {
		if strings.EqualFold(pe.Path, name) || strings.HasSuffix(pe.Path, string(os.PathSeparator)+name) {
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "executable file not found") && strings.Contains(msg, name)
}
