package main

import (
	"os"

	"github.com/MKhiriev/mobile-e2e-config/internal/cli"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.NewRootCmd(os.Stdout, os.Stderr, build).Execute(); err != nil {
		os.Exit(1)
	}
}
