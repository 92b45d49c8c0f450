package usecase

// TokenIssuer derives the auth token stored on a user at registration.
type TokenIssuer interface {
	Issue(userID, email, fullName string) (string, error)
}
