package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	userIDKey keyType = "userID"
	tokenKey  keyType = "token"
)

// ctxWithUserID adds the authenticated user's ID to the context
func ctxWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the authenticated user's ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	ctxValue := ctx.Value(userIDKey)
	if ctxValue == nil {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	userID, ok := ctxValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is not a UUID")
	}
	return userID, nil
}

// ctxWithToken adds the raw bearer token to the context, so logout can
// revoke exactly the token that authenticated the request
func ctxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// ctxGetToken retrieves the raw bearer token from the context
func ctxGetToken(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(tokenKey)
	if ctxValue == nil {
		return "", errors.New("token not found in context")
	}
	token, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("token in context is not a string")
	}
	return token, nil
}
