package model

import "time"

// User owns widgets, layouts and sets. The owned rows reference it through a
// nullable user_id with ON UPDATE CASCADE, so an id reassignment follows.
type User struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
