package constant

// SessionCookie carries the signed admin session token.
const SessionCookie = "admin_session"

// Auth strategies. A deployment picks exactly one.
const (
	AuthStrategyCookie = "cookie"
	AuthStrategyBasic  = "basic"
	AuthStrategyBearer = "bearer"
)

// Storage backends.
const (
	StoreBackendFile  = "file"
	StoreBackendSheet = "sheet"
	StoreBackendSQL   = "sql"
)

// TimeLayout is the fixed-width timestamp format stored on records.
// Fixed width keeps lexicographic order equal to chronological order,
// which the sheet backend relies on when sorting listings.
const TimeLayout = "2006-01-02T15:04:05.000Z"

type ContextKey string

const UsernameKey ContextKey = "username"
