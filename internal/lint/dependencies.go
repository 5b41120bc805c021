package lint

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// CommandRunner executes external commands. Run blocks until the child
// process terminates and returns its exit code. A non-zero exit code is
// not an error; err is non-nil only when the process could not be run
// at all (binary missing, not executable).
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// Dependencies holds all external collaborators, so tests can swap in
// fakes without touching the real filesystem or process table.
type Dependencies struct {
	FS     afero.Fs
	Runner CommandRunner
	Stdout io.Writer
	Stderr io.Writer
}

// realCommandRunner runs commands with stdout/stderr streamed to the
// given writers, so the invoked tool's diagnostics are visible live.
type realCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func (r *realCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		FS:     afero.NewOsFs(),
		Runner: &realCommandRunner{stdout: os.Stdout, stderr: os.Stderr},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
