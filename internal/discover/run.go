package discover

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Run is the entry point for the find-d-intf command. It reads the Meson
// roots from the environment, discovers generated interface files and
// prints one source-root-relative path per line. The returned value is
// the process exit code.
func Run(fsys afero.Fs, getenv func(string) string, stdout io.Writer) int {
	cfg, err := ConfigFromEnv(getenv)
	if err != nil {
		// Meson drives this tool; report the contract violation and stop.
		_, _ = fmt.Fprintln(stdout, "This tool should only be run by the Meson build system.")
		return 1
	}

	files, err := InterfaceFiles(fsys, cfg)
	if err != nil {
		_, _ = fmt.Fprintf(stdout, "Error discovering interface files: %v\n", err)
		return 1
	}

	for _, f := range files {
		_, _ = fmt.Fprintln(stdout, f)
	}
	return 0
}
