// Package main implements the find-d-intf helper for the Meson build.
//
// It lists generated D interface files under the build root's girepo
// directory, relative to the source root, for consumption by Meson.
package main

import (
	"os"

	"github.com/dlang-ci/dci-tools/internal/discover"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(discover.Run(afero.NewOsFs(), os.Getenv, os.Stdout))
}
