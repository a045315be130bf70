package session

import "github.com/golang-jwt/jwt/v5"

// Email extracts the subject claim from the bearer token for display purposes
// only. The token is parsed unverified: validity is the platform API's
// business, the front-end only branches on presence.
func Email(token string) string {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
