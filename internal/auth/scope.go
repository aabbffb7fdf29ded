package auth

import "github.com/gin-gonic/gin"

const (
	adminScopeKey  = "auth.admin_scope"
	memberScopeKey = "auth.member_scope"
)

// AdminScope is the gym an admin request is confined to. AdminID is the gym
// key; GymName travels along for display and receipts.
type AdminScope struct {
	AdminID int
	GymName string
}

// MemberScope confines a member request to the member's own rows and,
// for gym-wide reads, to the owning gym.
type MemberScope struct {
	MemberID int
	AdminID  int
	GymName  string
}

func (m MemberScope) Gym() AdminScope {
	return AdminScope{AdminID: m.AdminID, GymName: m.GymName}
}

func SetAdminScope(c *gin.Context, scope AdminScope) {
	c.Set(adminScopeKey, scope)
}

func SetMemberScope(c *gin.Context, scope MemberScope) {
	c.Set(memberScopeKey, scope)
}

func AdminScopeFrom(c *gin.Context) (AdminScope, bool) {
	v, exists := c.Get(adminScopeKey)
	if !exists {
		return AdminScope{}, false
	}
	scope, ok := v.(AdminScope)
	return scope, ok
}

func MemberScopeFrom(c *gin.Context) (MemberScope, bool) {
	v, exists := c.Get(memberScopeKey)
	if !exists {
		return MemberScope{}, false
	}
	scope, ok := v.(MemberScope)
	return scope, ok
}
