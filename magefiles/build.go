//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Labs builds every lab binary into bin/.
func (Build) Labs() error {
	mg.Deps(Build.Shaders)
	for _, lab := range labs {
		out := filepath.Join("bin", lab)
		if _, err := executeCmd("go", withArgs("build", "-o", out, "./cmd/"+lab), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Shaders checks the GLSL sources with the reference compiler.
func (Build) Shaders() error {
	return validateShaders()
}
