package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuild(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = valueNotProvided
	v := FromBuild()
	assert.False(t, v.IsRelease())
	assert.Equal(t, runtime.Version(), v.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, v.Platform)

	version = "0.4.1"
	assert.True(t, FromBuild().IsRelease())
}

func TestVersion_Fields(t *testing.T) {
	v := Version{
		Version:      "0.4.1",
		GitCommit:    "abc123",
		GitTreeState: "clean",
		BuildDate:    "2026-10-16",
		GoVersion:    "go1.17.8",
		Compiler:     "gc",
		Platform:     "linux/amd64",
	}

	var names, values []string
	for _, f := range v.Fields() {
		names = append(names, f.Name)
		values = append(values, f.Value)
	}

	assert.Equal(t, []string{"Version", "BuildDate", "GitCommit", "GitTreeState", "Platform", "GoVersion", "Compiler"}, names)
	assert.Equal(t, []string{"0.4.1", "2026-10-16", "abc123", "clean", "linux/amd64", "go1.17.8", "gc"}, values)
}
