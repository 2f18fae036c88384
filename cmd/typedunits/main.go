// Command typedunits is a CLI for the units-of-measurement engine: it
// parses, converts, and lists units from the default SI catalog.
package main

import "github.com/mhucka/typedunits/cmd/typedunits/cmd"

func main() {
	cmd.Execute()
}
