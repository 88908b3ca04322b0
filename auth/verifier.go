package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrInvalidToken covers missing, malformed and expired credentials alike;
// callers only need to know the request is unauthorized.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier resolves a bearer credential to a verified principal email.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// GoogleVerifier validates Google-issued ID tokens.
type GoogleVerifier struct {
	validator *idtoken.Validator
	audience  string
}

func NewGoogleVerifier(ctx context.Context, audience string) (*GoogleVerifier, error) {
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("create token validator: %w", err)
	}

	return &GoogleVerifier{
		validator: validator,
		audience:  audience,
	}, nil
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (string, error) {
	payload, err := v.validator.Validate(ctx, token, v.audience)
	if err != nil {
		return "", ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}
