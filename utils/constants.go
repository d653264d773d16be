// File: utils/constants.go
package utils

// DashboardCachePrefix prefixes Redis keys holding dashboard snapshots.
const DashboardCachePrefix = "dashboard:"

// Roles carried in the store bearer token.
const (
	RoleOwner = "owner"
)
