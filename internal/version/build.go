/*
Package version reports the build information injected at link time and checks for newer releases.
*/
package version

import (
	"fmt"
	"runtime"
)

const valueNotProvided = "[not provided]"

// set with -ldflags at build time
var (
	version      = valueNotProvided
	gitCommit    = valueNotProvided
	gitTreeState = valueNotProvided
	buildDate    = valueNotProvided
	platform     = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Version describes the running binary.
type Version struct {
	Version      string `json:"version"`
	GitCommit    string `json:"gitCommit"`
	GitTreeState string `json:"gitTreeState"`
	BuildDate    string `json:"buildDate"`
	GoVersion    string `json:"goVersion"`
	Compiler     string `json:"compiler"`
	Platform     string `json:"platform"`
}

// Field is a single named piece of version information.
type Field struct {
	Name  string
	Value string
}

func FromBuild() Version {
	return Version{
		Version:      version,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     platform,
	}
}

// IsRelease reports whether a release version was injected at build time.
func (v Version) IsRelease() bool {
	return v.Version != valueNotProvided
}

// Fields lists the version details in display order.
func (v Version) Fields() []Field {
	return []Field{
		{Name: "Version", Value: v.Version},
		{Name: "BuildDate", Value: v.BuildDate},
		{Name: "GitCommit", Value: v.GitCommit},
		{Name: "GitTreeState", Value: v.GitTreeState},
		{Name: "Platform", Value: v.Platform},
		{Name: "GoVersion", Value: v.GoVersion},
		{Name: "Compiler", Value: v.Compiler},
	}
}
