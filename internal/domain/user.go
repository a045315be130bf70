package domain

// Credentials are what POST /token expects (the username field carries the
// email).
type Credentials struct {
	Email    string
	Password string
}

type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}
