package model

import "time"

type User struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:text;unique;not null" json:"username" validate:"required"`
	Password  string    `gorm:"column:password;type:text;not null" json:"password,omitempty" validate:"required"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
