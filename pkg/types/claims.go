package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the resolved staff identity carried through the request context.
// The domain layer only ever sees this struct, never the cookie or header it
// came from.
type Claims struct {
	UserID        uint   `json:"user_id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	InstitutionID *uint  `json:"institution_id,omitempty"`
	jwt.RegisteredClaims
}
