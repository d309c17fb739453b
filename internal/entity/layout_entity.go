package entity

import "time"

type Layout struct {
	Id          uint
	Name        string
	Description *string
	UserId      *uint
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
