// Command cminic is the compiler driver described in spec.md §6.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/mna/cminic/internal/cli"
)

var (
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := cli.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
