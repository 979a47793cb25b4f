// Package buildinfo holds version metadata stamped at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/catalog/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "runtime"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
