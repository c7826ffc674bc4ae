package config

import "fmt"

// ModuleName is the name of the go module as specified in go.mod.
const ModuleName = "github/uniagent/go-broker"

// The following vars are automatically injected via -ldflags.
// See Makefile target "go-build" for the definition.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<commit> <build date>"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v %v", Commit, BuildDate)
}
