package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-kit/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateServiceToken creates a signed HMAC-SHA256 JWT for a sibling
// service that needs to call the admin surface.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the deployment that issued the token
//   - Subject   (sub): the name of the calling service
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are
// empty or zero.
func GenerateServiceToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.ServiceToken, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.ServiceToken{}, errors.New("invalid params for generating service token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred during signing service token: %w", err)
	}

	return models.ServiceToken{Token: token, SignedString: tokenString, Subject: subject}, nil
}

// ValidateServiceToken validates the given JWT string and extracts its
// claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateServiceToken(tokenString, tokenSignKey, tokenIssuer string) (models.ServiceToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ServiceToken{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.ServiceToken{}, errors.New("empty subject error")
	}

	return models.ServiceToken{Token: token, Subject: subject}, nil
}

// ParseBearerToken extracts the token part from a raw Authorization
// header value of the form "<scheme> <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
