package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo carries build-time version information set via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

// SetBuildInfo records the build information shown by the version command.
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jsond %s (commit %s, built %s)\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate)
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
