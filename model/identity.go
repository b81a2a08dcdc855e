package model

// Identity is what the request authenticator attaches to the context.
// It is built one of two ways: from a store-backed user record, or from a
// verified token whose subject has no backing record (User stays nil).
type Identity struct {
	UserID string
	User   *User
}

// NewIdentity builds an identity backed by a user record.
func NewIdentity(user *User) Identity {
	return Identity{UserID: user.UserID, User: user}
}

// NewTokenIdentity builds an identity from a verified token subject only.
func NewTokenIdentity(userID string) Identity {
	return Identity{UserID: userID}
}
