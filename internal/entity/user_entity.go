package entity

import "time"

type User struct {
	Id          uint
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
