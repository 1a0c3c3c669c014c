package llmprovider

// Log prefixes
const (
	LogPrefixManager = "pkg.llmprovider.Manager.GenerateContent"
)
