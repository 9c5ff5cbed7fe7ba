package observability

// Build identity, reported by /api/version and the startup log line.
// Release builds override these via -ldflags -X.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "" // UTC build timestamp
)
