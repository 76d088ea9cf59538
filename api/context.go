package api

import (
	"context"
)

type keyType string

const (
	adminKey keyType = "admin"
)

// Admin is the identity carried by an admin session token
type Admin struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ctxWithAdmin adds the authenticated admin to the context
func ctxWithAdmin(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// ctxGetAdmin retrieves the authenticated admin from the context
func ctxGetAdmin(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(adminKey).(Admin)
	return admin, ok
}
