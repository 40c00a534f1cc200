// iobench benchmarks filesystem read throughput.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/iobench/internal/cli"
)

// version is the version of the application, set by the build system.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
