package handler

import (
	"mondaymagic/backend/internal/models"

	"gorm.io/gorm"
)

// isActiveMember reports whether the user currently holds an active membership
// in the playgroup. This is the gate in front of every playgroup- and
// game-scoped read or write. It always hits the database: membership can be
// revoked between requests and a stale answer here is an authorization hole,
// so the result is never cached.
func isActiveMember(db *gorm.DB, playgroupID uint, userID string) bool {
	var count int64
	db.Model(&models.PlaygroupMember{}).
		Where("playgroup_id = ? AND user_id = ? AND is_active = ?", playgroupID, userID, true).
		Count(&count)
	return count > 0
}
