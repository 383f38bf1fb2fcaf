// rubikscube - command-line tool for modelling, generating and tracking
// Rubik's cube states.
package main

import (
	"github.com/h4rr9/rubiks-cube/internal/cli"
)

func main() {
	cli.Execute()
}
