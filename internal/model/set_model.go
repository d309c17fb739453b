package model

import "time"

type Set struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	UserId      *uint     `gorm:"index"`
	User        *User     `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Set) TableName() string {
	return "sets"
}

type SetLayout struct {
	SetId    uint    `gorm:"primaryKey;autoIncrement:false"`
	LayoutId uint    `gorm:"primaryKey;autoIncrement:false;index"`
	Position int64   `gorm:"not null"`
	Set      *Set    `gorm:"foreignKey:SetId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Layout   *Layout `gorm:"foreignKey:LayoutId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SetLayout) TableName() string {
	return "set_layouts"
}
