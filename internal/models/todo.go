package models

const (
	TodoPriorityMin = 1
	TodoPriorityMax = 6
)

type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `gorm:"type:varchar(500);not null" json:"description"`
	Priority    int    `gorm:"not null" json:"priority"`
	Complete    bool   `gorm:"not null;default:false" json:"complete"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`

	// Foreign key relationship: a todo cannot outlive its owner
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
