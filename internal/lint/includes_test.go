package lint

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func mkdir(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func resolvedDirs(t *testing.T, fsys afero.Fs, l Layout) []string {
	t.Helper()
	return Resolve(fsys, Candidates(fsys, l))
}

func TestCandidates(t *testing.T) {
	t.Run("subproject src and source dirs are picked up", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		mkdir(t, fsys, "/proj/contrib/subprojects/girtod/src")
		mkdir(t, fsys, "/proj/contrib/subprojects/containers/source")
		mkdir(t, fsys, "/proj/contrib/subprojects/containers/docs")

		dirs := resolvedDirs(t, fsys, DefaultLayout("/proj", "build"))

		assertContains(t, dirs, "/proj/contrib/subprojects/girtod/src")
		assertContains(t, dirs, "/proj/contrib/subprojects/containers/source")
		assertNotContains(t, dirs, "/proj/contrib/subprojects/containers/docs")
	})

	t.Run("unconditional candidates survive a bare filesystem", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		dirs := resolvedDirs(t, fsys, DefaultLayout("/proj", "build"))

		want := []string{
			"/proj/src",
			"/proj/build/girepo",
			"/proj/build/src",
		}
		if !reflect.DeepEqual(dirs, want) {
			t.Errorf("Got %v, want %v", dirs, want)
		}
	})

	t.Run("system runtime includes are probed", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		mkdir(t, fsys, "/usr/local/include/d/glibd-2")

		dirs := resolvedDirs(t, fsys, DefaultLayout("/proj", "build"))

		assertContains(t, dirs, "/usr/local/include/d/glibd-2")
		assertNotContains(t, dirs, "/usr/include/d/glibd-2")
	})

	t.Run("compiler internal includes expand per installed version", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		mkdir(t, fsys, "/usr/lib/ldc/1.30.0/include/d/ldc")
		mkdir(t, fsys, "/usr/lib/ldc/1.32.1/include/d")

		dirs := resolvedDirs(t, fsys, DefaultLayout("/proj", "build"))

		assertContains(t, dirs, "/usr/lib/ldc/1.30.0/include/d")
		assertContains(t, dirs, "/usr/lib/ldc/1.32.1/include/d")
		assertContains(t, dirs, "/usr/lib/ldc/1.30.0/include/d/ldc")
		assertNotContains(t, dirs, "/usr/lib/ldc/1.32.1/include/d/ldc")
	})

	t.Run("build dir name is honored", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		dirs := resolvedDirs(t, fsys, DefaultLayout("/proj", "out"))

		assertContains(t, dirs, "/proj/out/girepo")
		assertContains(t, dirs, "/proj/out/src")
		assertNotContains(t, dirs, "/proj/build/girepo")
	})
}

func TestResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mkdir(t, fsys, "/exists")

	cands := []Candidate{
		{Path: "/missing-mandatory", Policy: Mandatory},
		{Path: "/exists", Policy: Probed},
		{Path: "/missing-probed", Policy: Probed},
	}

	got := Resolve(fsys, cands)
	want := []string{"/missing-mandatory", "/exists"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestIncludeFlags(t *testing.T) {
	flags := IncludeFlags([]string{"/a", "/b/c"})
	want := []string{"-I/a", "-I/b/c"}
	if !reflect.DeepEqual(flags, want) {
		t.Errorf("Got %v, want %v", flags, want)
	}
}

func assertContains(t *testing.T, dirs []string, dir string) {
	t.Helper()
	for _, d := range dirs {
		if d == dir {
			return
		}
	}
	t.Errorf("Expected %v to contain %s", dirs, dir)
}

func assertNotContains(t *testing.T, dirs []string, dir string) {
	t.Helper()
	for _, d := range dirs {
		if d == dir {
			t.Errorf("Expected %v not to contain %s", dirs, dir)
		}
	}
}
