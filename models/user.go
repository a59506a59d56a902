package models

import (
	"time"

	"gorm.io/gorm"
)

// User is identified by email. Username is an optional short handle,
// kept for compatibility with older clients.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Username    *string   `json:"username" gorm:"size:10"`
	PhoneNumber *string   `json:"phone_number" gorm:"size:15"`
	Password    string    `json:"-" gorm:"not null"`
	FirstName   string    `json:"first_name" gorm:"size:150"`
	LastName    string    `json:"last_name" gorm:"size:150"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	CreatedAt   time.Time `json:"-" gorm:"autoCreateTime"`
}

func (u *User) TableName() string {
	return "users"
}

// BeforeSave keeps the superuser-implies-staff invariant.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.IsSuperuser {
		u.IsStaff = true
	}
	return nil
}

// FullName returns the first and last name, falling back to the email.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// Migrate runs auto migration for all catalog models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{}, &Product{}, &User{})
}
