//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Ingest builds the CLI and runs a full ingestion over the configured sources.
// See prd005-ingestion for full requirements.
func Ingest() error {
	mg.Deps(Build, Init)

	cmd := exec.Command(filepath.Join(binDir, binName), "ingest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
