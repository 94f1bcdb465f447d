package middleware

// contextKey is a private type for context values set by middleware,
// keeping them from colliding with keys set elsewhere.
type contextKey string
