package model

import "time"

type Widget struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	Type        string    `gorm:"type:varchar(64);not null"`
	Content     string    `gorm:"type:text;not null"`
	UserId      *uint     `gorm:"index"`
	User        *User     `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Widget) TableName() string {
	return "widgets"
}
