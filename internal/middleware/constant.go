package middleware

const (
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLength = 128
	maxLimiterEntries  = 1000
)
