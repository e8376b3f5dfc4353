package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// askForConfirmation prompts the user with msg and returns whether they
// answered y/yes.
func askForConfirmation(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// confirmIfExists asks before overwriting path if it already exists,
// returning false if the caller should not proceed.
func confirmIfExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	return askForConfirmation(fmt.Sprintf("%s already exists, overwrite?", path))
}
