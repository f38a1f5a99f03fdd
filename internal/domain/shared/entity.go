package shared

import "time"

// BaseEntity provides the common identity and timestamp columns for all
// persisted entities. IDs are database-assigned auto-increment integers.
type BaseEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsNew reports whether the entity has not been persisted yet.
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}
