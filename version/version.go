package version

const (
	// SemVer is used as the fallback version of sigverify
	// when not using git describe. It uses semantic versioning format.
	SemVer = "0.1.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the sigverify binary. See Makefile.
var GitCommitHash = ""

// String returns SemVer with the commit hash appended when known.
func String() string {
	if GitCommitHash != "" {
		return SemVer + "+" + GitCommitHash
	}
	return SemVer
}
