package model

import "time"

type Layout struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	UserId      *uint     `gorm:"index"`
	User        *User     `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Layout) TableName() string {
	return "layouts"
}

// LayoutWidget is a membership row. Position keeps insertion order.
type LayoutWidget struct {
	LayoutId uint    `gorm:"primaryKey;autoIncrement:false"`
	WidgetId uint    `gorm:"primaryKey;autoIncrement:false;index"`
	Position int64   `gorm:"not null"`
	Layout   *Layout `gorm:"foreignKey:LayoutId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Widget   *Widget `gorm:"foreignKey:WidgetId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (LayoutWidget) TableName() string {
	return "layout_widgets"
}
