// Package userctx stores the authenticated user in the request context.
// It lives in its own package so both the middlewares and the handlers can
// use it.
package userctx

import (
	"context"

	"github.com/codepioneers/recruiting/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

func NewContext(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func FromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}
