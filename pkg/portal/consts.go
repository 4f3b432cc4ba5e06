package portal

const DatesLayout = "2006-01-02"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const ForwardedForHeader = "X-Forwarded-For"

// ---- Middleware / Context

type contextKey string

const RequestIDKey contextKey = "request.id"
