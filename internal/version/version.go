package version

// AppVersion is set at build time with
// -ldflags "-X deckctl/internal/version.AppVersion=1.2.3".
var AppVersion = "0.1.0"

// Commit is the VCS revision the binary was built from, when known.
var Commit = ""
