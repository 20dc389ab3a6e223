package model

// TokenManager issues and validates bearer tokens whose subject is the owner principal.
type TokenManager interface {
	GenerateAccessToken(owner string) (string, error)
	ParseAccessToken(token string) (string, error)
}
