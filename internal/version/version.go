// Package version provides version information and display utilities for
// the cookiegen command.
package version

import (
	"fmt"
	"os"
)

const (
	// Name of the command.
	Name string = "cookiegen"
	// Version of the command.
	Version string = "0.2.0"
	// Additional information.
	Additional string = "xzspider2 acw_sc__v2 cookie adapter"
)

// String returns a plain text representation of the version information.
func String() string {
	return fmt.Sprintf("%s %s (%s)", Name, Version, Additional)
}

// Print the version.
func Print() {
	fmt.Println(String())
}

// PrintAndExit prints the program version and exits.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
