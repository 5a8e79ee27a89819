package entity

// TokenType tags a token as usable for request authentication or for
// exchanging into a fresh access token.
type TokenType string

const (
	// TokenTypeAccess marks short-lived tokens presented on authenticated requests.
	TokenTypeAccess TokenType = "ACCESS"
	// TokenTypeRefresh marks long-lived tokens accepted only by the refresh exchange.
	TokenTypeRefresh TokenType = "REFRESH"
)

// Valid reports whether t is one of the known token types.
func (t TokenType) Valid() bool {
	return t == TokenTypeAccess || t == TokenTypeRefresh
}

// TokenPayload is the transient claim set carried inside a signed token.
// It is never persisted; validity is enforced purely by signature and expiry
// at verification time.
type TokenPayload struct {
	UserID int64
	Type   TokenType
}
