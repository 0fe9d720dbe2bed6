package user

import "time"

type User struct {
	UID          uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"id"`
	Username     string    `gorm:"size:50;not null;unique" json:"username"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Email        string    `gorm:"size:100" json:"-"`
	FirstName    string    `gorm:"size:30" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsSupervisor bool      `gorm:"default:false" json:"is_supervisor"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	full := u.FirstName
	if u.LastName != "" {
		if full != "" {
			full += " "
		}
		full += u.LastName
	}
	if full == "" {
		return u.Username
	}
	return full
}

// UserProfile holds the contact details needed to pay out a ticket.
type UserProfile struct {
	UserID       uint   `gorm:"primaryKey;column:u_id" json:"user_id"`
	Address      string `gorm:"type:text" json:"address"`
	BankAccount  string `gorm:"size:64" json:"bank_account"`
	OtherContact string `gorm:"type:text" json:"other_contact"`
	User         User   `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
