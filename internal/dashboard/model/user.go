package model

import "time"

const (
	PermissionNone  = "NONE"
	PermissionRead  = "READ"
	PermissionWrite = "WRITE"
	PermissionAdmin = "ADMIN"
)

// Permissions lists every assignable permission level.
var Permissions = []string{PermissionNone, PermissionRead, PermissionWrite, PermissionAdmin}

var permissionRank = map[string]int{
	PermissionNone:  0,
	PermissionRead:  1,
	PermissionWrite: 2,
	PermissionAdmin: 3,
}

// PermissionAtLeast reports whether permission grants at least the required
// level. Unknown permissions grant nothing.
func PermissionAtLeast(permission, required string) bool {
	rank, ok := permissionRank[permission]
	if !ok {
		return false
	}
	return rank >= permissionRank[required]
}

type User struct {
	ID         string `gorm:"default:(-)"`
	Email      string
	Name       string
	Password   string
	Permission string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
