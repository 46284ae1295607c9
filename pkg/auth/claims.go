package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims is the bearer token payload: the user id plus registered claims.
type AccessTokenClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}
