// Package lint assembles include search paths for D sources and runs
// dscanner style checks against a project tree.
package lint

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Policy states how an include candidate is admitted to the final list.
type Policy int

const (
	// Mandatory candidates are included whether or not they exist on
	// disk; dscanner tolerates missing search paths.
	Mandatory Policy = iota
	// Probed candidates are included only if they exist as directories.
	Probed
)

// Candidate is a directory proposed for dscanner's include search path.
type Candidate struct {
	Path   string
	Policy Policy
}

// Layout describes where include directories live for a project and its
// toolchain. The defaults model a Debian-style LDC installation.
type Layout struct {
	// SourceRoot is the absolute path of the project being checked.
	SourceRoot string
	// BuildDir is the name of the build directory under SourceRoot.
	BuildDir string
	// RuntimeLibs are D runtime library names to probe under the
	// system include roots.
	RuntimeLibs []string
	// SystemIncludeRoots are prefixes where distro-packaged D headers
	// may be installed.
	SystemIncludeRoots []string
	// CompilerIncludeGlobs locate compiler-internal interface files
	// across parallel-installed toolchain versions.
	CompilerIncludeGlobs []string
}

// DefaultLayout returns the conventional layout for a project rooted at
// sourceRoot with the given build directory name.
func DefaultLayout(sourceRoot, buildDir string) Layout {
	return Layout{
		SourceRoot:         sourceRoot,
		BuildDir:           buildDir,
		RuntimeLibs:        []string{"glibd-2"},
		SystemIncludeRoots: []string{"/usr/include/d", "/usr/local/include/d"},
		CompilerIncludeGlobs: []string{
			"/usr/lib/ldc/*/include/d",
			"/usr/lib/ldc/*/include/d/ldc",
		},
	}
}

// Candidates assembles the include directory candidates for a layout,
// in the order dscanner should receive them:
//
//  1. src/source directories of vendored subprojects
//  2. the project's own src directory
//  3. system-installed D runtime libraries (probed)
//  4. compiler-internal includes (glob-expanded)
//  5. generated build output (girepo and compiled sources)
func Candidates(fsys afero.Fs, l Layout) []Candidate {
	var cands []Candidate

	// Vendored source trees live two levels below contrib/subprojects
	// (one directory per subproject). The glob only yields entries that
	// exist, so no re-check is needed.
	pattern := filepath.Join(l.SourceRoot, "contrib", "subprojects", "*", "*")
	matches, _ := afero.Glob(fsys, pattern)
	for _, m := range matches {
		base := filepath.Base(m)
		if base == "src" || base == "source" {
			cands = append(cands, Candidate{Path: m, Policy: Mandatory})
		}
	}

	cands = append(cands, Candidate{
		Path:   filepath.Join(l.SourceRoot, "src"),
		Policy: Mandatory,
	})

	// The runtime library may be installed system-wide or locally; the
	// consuming environment is not known in advance, so both are tried.
	for _, lib := range l.RuntimeLibs {
		for _, root := range l.SystemIncludeRoots {
			cands = append(cands, Candidate{
				Path:   filepath.Join(root, lib),
				Policy: Probed,
			})
		}
	}

	for _, g := range l.CompilerIncludeGlobs {
		globbed, _ := afero.Glob(fsys, g)
		for _, m := range globbed {
			cands = append(cands, Candidate{Path: m, Policy: Mandatory})
		}
	}

	cands = append(cands,
		Candidate{
			Path:   filepath.Join(l.SourceRoot, l.BuildDir, "girepo"),
			Policy: Mandatory,
		},
		Candidate{
			Path:   filepath.Join(l.SourceRoot, l.BuildDir, "src"),
			Policy: Mandatory,
		},
	)

	return cands
}

// Resolve applies each candidate's policy against the filesystem and
// returns the surviving directories in candidate order.
func Resolve(fsys afero.Fs, cands []Candidate) []string {
	var dirs []string
	for _, c := range cands {
		if c.Policy == Probed {
			ok, err := afero.DirExists(fsys, c.Path)
			if err != nil || !ok {
				continue
			}
		}
		dirs = append(dirs, c.Path)
	}
	return dirs
}

// IncludeFlags renders directories as dscanner -I flags.
func IncludeFlags(dirs []string) []string {
	flags := make([]string, 0, len(dirs))
	for _, d := range dirs {
		flags = append(flags, "-I"+d)
	}
	return flags
}
