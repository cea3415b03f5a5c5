package constants

// Version is the semver version of this build, set via ldflags
var Version = "0.1.0"

// BranchName is the branch this build was produced from, set via ldflags
var BranchName = "main"

// RevisionHash is the commit this build was produced from, set via ldflags
var RevisionHash = "unknown"

// Date is the date this build was produced, set via ldflags
var Date = "unknown"
