package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User exists for interface completeness; no route reaches the user
// store in the current API surface. Password holds an argon2id hash.
type User struct {
	ID        int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"column:username;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	Role      string    `json:"role" gorm:"column:role;not null;default:customer"`
	Email     *string   `json:"email" gorm:"column:email"`
	FirstName *string   `json:"firstName" gorm:"column:first_name"`
	LastName  *string   `json:"lastName" gorm:"column:last_name"`
	Phone     *string   `json:"phone" gorm:"column:phone"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
