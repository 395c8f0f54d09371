package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// CustomClaims represents the custom claims in the JWT tokens accepted by
// this API. Tokens are minted by the surrounding platform; this service only
// verifies them.
type CustomClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}
