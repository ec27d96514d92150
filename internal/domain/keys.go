package domain

// ContextKey is the type for request-scoped identity keys. Identity is an
// explicit per-request value resolved by the delivery layer, never
// ambient global state.
type ContextKey string

const (
	KeyCandidateID ContextKey = "CandidateID"
	KeyIsAdmin     ContextKey = "IsAdmin"
)
