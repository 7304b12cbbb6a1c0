package api

import (
	"context"
	"errors"
)

type keyType string

const (
	userIDKey    keyType = "userID"
	userRoleKey  keyType = "userRole"
	sessionIDKey keyType = "sessionID"
)

// ctxWithUserID adds a user ID to the context
func ctxWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxWithUserRole adds the caller's role to the context
func ctxWithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// ctxWithSessionID adds the browsing session ID to the context
func ctxWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// ctxGetUserID retrieves a user ID from the context
func ctxGetUserID(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, userIDKey)
}

// ctxGetUserRole retrieves the caller's role from the context
func ctxGetUserRole(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, userRoleKey)
}

// ctxGetSessionID retrieves the browsing session ID from the context
func ctxGetSessionID(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, sessionIDKey)
}

// ctxGetStringValue is a helper function to retrieve string values from the context by key
func ctxGetStringValue(ctx context.Context, key keyType) (string, error) {
	if ctxValue := ctx.Value(key); ctxValue == nil {
		return "", errors.New("key not found in context")
	} else if valueAsString, ok := ctxValue.(string); !ok {
		return "", errors.New("value is not of type `string`")
	} else {
		return valueAsString, nil
	}
}
