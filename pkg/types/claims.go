package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload. Role flags reflect the user at issue time; the
// authorization middleware re-reads them from the database.
type Claims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	IsStaff      bool   `json:"is_staff"`
	IsSupervisor bool   `json:"is_supervisor"`
	jwt.RegisteredClaims
}
