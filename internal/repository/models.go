package repository

// User is a row of the users table. Passwords are stored in whatever form
// the caller hands over.
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username string `gorm:"type:varchar(255);not null"`
	Password string `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

type NewUser struct {
	Email    string
	Username string
	Password string
}
