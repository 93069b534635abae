// Package stacktest holds fixtures shared by the stack test suites.
package stacktest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// UnitNames lists every compute unit with a deployable archive.
var UnitNames = []string{"textgen", "translate", "speech", "audiofx", "profile"}

var (
	stageOnce sync.Once
	stageErr  error
)

// StageUnitArchives writes placeholder deployment archives under a temp
// working directory so function assets resolve without a real build.
//
// Staging happens once per test binary: the jsii child process resolves
// relative asset paths against the working directory it saw on first use,
// so the archives must stay in one place for the life of the process.
func StageUnitArchives(t *testing.T) {
	t.Helper()
	stageOnce.Do(func() { stageErr = stageUnitArchives() })
	if stageErr != nil {
		t.Fatal(stageErr)
	}
}

func stageUnitArchives() error {
	dir, err := os.MkdirTemp("", "stacktest")
	if err != nil {
		return err
	}
	dist := filepath.Join(dir, "build", "dist")
	if err := os.MkdirAll(dist, 0o755); err != nil {
		return err
	}
	for _, name := range UnitNames {
		f, err := os.Create(filepath.Join(dist, name+".zip"))
		if err != nil {
			return err
		}
		zw := zip.NewWriter(f)
		w, err := zw.Create("bootstrap")
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte("placeholder\n")); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return os.Chdir(dir)
}
