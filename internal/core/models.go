package core

// User is the API view of an account. Token is only set on login responses.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token,omitempty"`
}

type NewUser struct {
	Email    string
	Username string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}
