package platform

import (
	"click-updater/updater/core"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

const frameworkSuffix = ".framework"

var goarchToDpkg = map[string]string{
	"386":     "i386",
	"amd64":   "amd64",
	"arm":     "armhf",
	"arm64":   "arm64",
	"ppc64le": "ppc64el",
	"riscv64": "riscv64",
	"s390x":   "s390x",
}

// Detect reports the device architecture and installed frameworks. A non
// empty architecture overrides detection.
func Detect(ctx context.Context, log *slog.Logger, architecture, frameworksDir string) (core.Platform, error) {
	if architecture == "" {
		architecture = dpkgArchitecture(ctx, log)
	}
	frameworks, err := Frameworks(frameworksDir)
	if err != nil {
		return core.Platform{}, err
	}
	log.Debug("platform detected", "architecture", architecture, "frameworks", frameworks)
	return core.Platform{Architecture: architecture, Frameworks: frameworks}, nil
}

func dpkgArchitecture(ctx context.Context, log *slog.Logger) string {
	out, err := exec.CommandContext(ctx, "dpkg", "--print-architecture").Output()
	if arch := strings.TrimSpace(string(out)); err == nil && arch != "" {
		return arch
	}
	log.Warn("dpkg architecture unavailable, falling back to GOARCH", "error", err)
	if arch, ok := goarchToDpkg[runtime.GOARCH]; ok {
		return arch
	}
	return runtime.GOARCH
}

// Frameworks lists the framework names declared in dir. A missing directory
// means no frameworks are installed.
func Frameworks(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read frameworks directory: %w", err)
	}
	var frameworks []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != frameworkSuffix {
			continue
		}
		frameworks = append(frameworks, strings.TrimSuffix(name, frameworkSuffix))
	}
	sort.Strings(frameworks)
	return frameworks, nil
}
