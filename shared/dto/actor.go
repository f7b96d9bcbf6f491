package dto

import (
	"context"
	"sitepro/shared/constant"
	"slices"
)

// Actor is the verified caller of a lifecycle operation.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ActorFromContext reads the identity placed on the context by the auth middleware.
func ActorFromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if name == "" {
		name, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	}

	return Actor{
		ID:   id,
		Name: name,
		Role: role,
	}
}

// HasRole reports whether the actor holds any of roles.
func (a Actor) HasRole(roles ...string) bool {
	return slices.Contains(roles, a.Role)
}

// CanReview reports whether the actor may approve or reject bids.
func (a Actor) CanReview() bool {
	return a.HasRole(constant.RoleProjectManager, constant.RoleAdmin, constant.RoleSuperAdmin)
}
