package version

// Version is the taskcloud version. It is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/taskcloud/internal/version.Version=...".
var Version = "0.1.0-dev"
