package entity

import "time"

type Widget struct {
	Id          uint
	Name        string
	Description *string
	Type        string
	Content     string
	UserId      *uint // nil for ownerless widgets
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
