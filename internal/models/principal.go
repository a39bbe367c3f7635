package models

// Principal is the authenticated identity for one request, reconstructed
// from a validated token by the auth middleware. It is never persisted.
type Principal struct {
	ID       uint
	Username string
	Role     Role
}
