package context

import (
	"context"

	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
)

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

func GetIdentity(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return 0, false
	}
	return identity.ID, true
}
