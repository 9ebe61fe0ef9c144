package main

import (
	"github.com/bnema/kkc-shortcuts/internal/cli/cmd"
	"github.com/bnema/kkc-shortcuts/internal/domain/build"
)

// Set by release builds:
//
//	-ldflags "-X main.version=v1.2.0 -X main.commit=... -X main.buildDate=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Resolve(version, commit, buildDate))
	cmd.Execute()
}
