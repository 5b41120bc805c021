// Package discover finds generated D interface files in a Meson build tree.
//
// The GIR-to-D wrapper generator drops one .d file per introspected
// namespace under <build root>/girepo. Meson needs that file list, relative
// to the source root, to wire the generated sources into its build manifest.
// Newer versions of Meson (>= 0.43) don't like absolute paths.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// girRepoDir is the subdirectory of the build root that holds
// generated interface files.
const girRepoDir = "girepo"

// Config anchors a discovery run. Both roots are absolute paths handed
// down by the build orchestrator.
type Config struct {
	BuildRoot  string
	SourceRoot string
}

// ErrMissingRoots reports that the Meson environment is incomplete.
var ErrMissingRoots = fmt.Errorf("MESON_BUILD_ROOT and MESON_SOURCE_ROOT must be set")

// ConfigFromEnv builds a Config from the given environment lookup
// function (usually os.Getenv). It fails if either root is unset or
// empty: running outside the Meson environment is meaningless.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		BuildRoot:  getenv("MESON_BUILD_ROOT"),
		SourceRoot: getenv("MESON_SOURCE_ROOT"),
	}
	if cfg.BuildRoot == "" || cfg.SourceRoot == "" {
		return Config{}, ErrMissingRoots
	}
	return cfg, nil
}

// InterfaceFiles returns every *.d file under the girepo subdirectory of
// the build root, each rewritten relative to the source root and sorted
// lexicographically. A missing girepo directory yields an empty result,
// not an error: a build that generated nothing is a valid build.
func InterfaceFiles(fsys afero.Fs, cfg Config) ([]string, error) {
	root := filepath.Join(cfg.BuildRoot, girRepoDir)

	if _, err := fsys.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	var files []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".d") {
			return nil
		}
		rel, relErr := filepath.Rel(cfg.SourceRoot, path)
		if relErr != nil {
			return fmt.Errorf("relativize %s: %w", path, relErr)
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
