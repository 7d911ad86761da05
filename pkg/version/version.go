package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time, e.g.
//
//	go build -ldflags "-X github.com/MessageComply/ComplyGate/pkg/version.Version=1.3.0 \
//	  -X github.com/MessageComply/ComplyGate/pkg/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/MessageComply/ComplyGate/pkg/version.BuildDate=$(date -u +%Y-%m-%d)"
var (
	Version   = "1.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const AppName = "ComplyGate"

// Info is the payload served by the version endpoint and the CLI --version
// flag.
type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
