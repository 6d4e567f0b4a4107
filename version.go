/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package swaggerfilter

import (
	"fmt"
	"runtime"
)

// Version information set by build flags
var (
	// Version is the semantic version of swaggerfilter
	Version = "0.1.0"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
}

// String renders the multi-line form printed by --version.
func (v VersionInfo) String() string {
	return fmt.Sprintf("swaggerfilter version %s\nGit commit: %s\nBuild date: %s\nGo version: %s\n",
		v.Version, v.GitCommit, v.BuildDate, v.GoVersion)
}
