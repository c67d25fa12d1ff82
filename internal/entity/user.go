package entity

// UserLoginData is the identity carried in a verified access token. User
// accounts themselves live in the storefront's auth service.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
