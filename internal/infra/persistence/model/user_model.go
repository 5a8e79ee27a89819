package model

import "time"

// UserModel mirrors the 'app_users' table. The store assigns the surrogate id;
// document and email carry named unique constraints so violations can be
// mapped back to the offending field.
type UserModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:text;not null"`
	Email        string     `gorm:"type:text;not null;uniqueIndex:uq_app_users_email"`
	Document     string     `gorm:"type:varchar(11);not null;uniqueIndex:uq_app_users_document"`
	PasswordHash string     `gorm:"column:password;type:text;not null"`
	Salt         string     `gorm:"type:text;not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "app_users"
}
