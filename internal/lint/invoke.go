package lint

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dlang-ci/dci-tools/internal/shared"
)

// Options configures a style-check run.
type Options struct {
	// Binary is the dscanner executable name or path.
	Binary string
	// SourceRoot is the absolute path of the project to check.
	SourceRoot string
	// ConfigPath is the dscanner configuration file.
	ConfigPath string
	// BuildDir is the build directory name under SourceRoot.
	BuildDir string
}

// Result captures the outcome of a style-check invocation.
type Result struct {
	Binary   string
	ExitCode int
	Args     []string
}

func (r Result) String() string {
	return fmt.Sprintf("%s exited with code %d (args: %v)", r.Binary, r.ExitCode, r.Args)
}

// RunCheck runs dscanner against the project's src directory with the
// assembled include search path, and maps the tool's exit status to a
// process exit code: 0 when the check passes, 1 when dscanner reports
// issues or cannot be launched. The returned value is the exit code for
// the calling program.
func RunCheck(ctx context.Context, opts Options, deps *Dependencies) int {
	if deps == nil {
		deps = NewDefaultDependencies()
	}

	_, _ = fmt.Fprintln(deps.Stdout, shared.Banner("D-Scanner"))

	// Version probe, diagnostic only. A failure here does not matter;
	// the main invocation reports the launch error properly.
	_, _ = deps.Runner.Run(ctx, "", opts.Binary, "--version")

	dirs := Resolve(deps.FS, Candidates(deps.FS, DefaultLayout(opts.SourceRoot, opts.BuildDir)))

	args := []string{
		"--styleCheck", filepath.Join(opts.SourceRoot, "src"),
		"--config", opts.ConfigPath,
	}
	args = append(args, IncludeFlags(dirs)...)

	code, err := deps.Runner.Run(ctx, opts.SourceRoot, opts.Binary, args...)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, shared.ErrorStyle.Render(
			fmt.Sprintf("Failed to run %s: %v", opts.Binary, err)))
		return 1
	}

	res := Result{Binary: opts.Binary, ExitCode: code, Args: args}
	if code == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, shared.SuccessStyle.Render(":) Success"))
		return 0
	}

	_, _ = fmt.Fprintln(deps.Stdout, shared.ErrorStyle.Render(":( D-Scanner found issues"))
	_, _ = fmt.Fprintln(deps.Stdout, res)
	return 1
}
