//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Fan runs the circle fan lab.
func (Run) Fan() error {
	return runLab("fan")
}

// Digits runs the binary clock lab.
func (Run) Digits() error {
	return runLab("digits")
}

// Cube runs the cube scene lab.
func (Run) Cube() error {
	return runLab("cube")
}

// Tests runs the unit tests of every package.
func (Run) Tests() error {
	fmt.Println("Run tests...")
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

func runLab(lab string) error {
	if err := validateShaders(); err != nil {
		return err
	}
	fmt.Printf("Run %s...\n", lab)
	if _, err := executeCmd("go", withArgs("run", "./cmd/"+lab), withStream()); err != nil {
		return err
	}
	return nil
}
