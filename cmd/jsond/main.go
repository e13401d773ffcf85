// jsond - zero-config JSON REST API server
package main

import (
	"fmt"
	"os"

	"github.com/getjsond/jsond/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.SetBuildInfo(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
