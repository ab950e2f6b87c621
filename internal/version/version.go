package version

// Version is overridden at build time via
// -ldflags "-X github.com/bnema/instagram-query-cli/internal/version.Version=v1.2.3".
var Version = "dev"
