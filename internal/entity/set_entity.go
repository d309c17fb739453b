package entity

import "time"

type Set struct {
	Id          uint
	Name        string
	Description *string
	UserId      *uint
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
