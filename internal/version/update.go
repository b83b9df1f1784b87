package version

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	hashiVersion "github.com/anchore/go-version"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/anchore/osident/internal"
)

const updateCheckTimeout = 5 * time.Second

var latestAppVersionURL = struct {
	host string
	path string
}{
	host: "https://toolbox-data.anchore.io",
	path: fmt.Sprintf("/%s/releases/latest/VERSION", internal.ApplicationName),
}

// IsUpdateAvailable compares the version of this build against the latest published release.
func IsUpdateAvailable(ctx context.Context) (bool, string, error) {
	build := FromBuild()
	if !build.IsRelease() {
		// development builds are never out of date
		return false, "", nil
	}

	currentVersion, err := hashiVersion.NewVersion(build.Version)
	if err != nil {
		return false, "", fmt.Errorf("failed to parse current application version: %w", err)
	}

	latestVersion, err := fetchLatestApplicationVersion(ctx)
	if err != nil {
		return false, "", err
	}

	if latestVersion.GreaterThan(currentVersion) {
		return true, latestVersion.String(), nil
	}

	return false, "", nil
}

func fetchLatestApplicationVersion(ctx context.Context) (*hashiVersion.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestAppVersionURL.host+latestAppVersionURL.path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for latest version: %w", err)
	}

	resp, err := cleanhttp.DefaultClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d on fetching latest version: %s", resp.StatusCode, resp.Status)
	}

	versionBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest version: %w", err)
	}

	versionStr := strings.TrimSpace(string(versionBytes))
	return hashiVersion.NewVersion(versionStr)
}
