package handlers

import (
	"context"

	"github.com/codepioneers/recruiting/internal/handlers/userctx"
	"github.com/codepioneers/recruiting/internal/models"
)

func NewContextWithUser(ctx context.Context, u models.User) context.Context {
	return userctx.NewContext(ctx, u)
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	return userctx.FromContext(ctx)
}
