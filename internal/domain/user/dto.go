package user

import "github.com/shopspring/decimal"

type CreateUserInput struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password  string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Email     string `json:"email" form:"email" binding:"omitempty,email" example:"user@example.com"`
	FirstName string `json:"first_name" form:"first_name" example:"John"`
	LastName  string `json:"last_name" form:"last_name" example:"Doe"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// UpdateDetailsInput covers the account fields a user may change about themselves
// together with every profile field.
type UpdateDetailsInput struct {
	FirstName    string `json:"first_name" binding:"max=30"`
	LastName     string `json:"last_name" binding:"max=150"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	BankAccount  string `json:"bank_account" binding:"max=64"`
	OtherContact string `json:"other_contact"`
}

type UserDTO struct {
	UID          uint   `json:"id" example:"12"`
	Username     string `json:"username" example:"johndoe"`
	FirstName    string `json:"first_name" example:"John"`
	LastName     string `json:"last_name" example:"Doe"`
	Email        string `json:"email,omitempty" example:"user@example.com"`
	IsStaff      bool   `json:"is_staff"`
	IsSupervisor bool   `json:"is_supervisor"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		UID:          u.UID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		IsStaff:      u.IsStaff,
		IsSupervisor: u.IsSupervisor,
	}
}

// ToPublicDTO is ToDTO without contact details, for listings anyone can read.
func ToPublicDTO(u User) UserDTO {
	dto := ToDTO(u)
	dto.Email = ""
	return dto
}

type DetailsDTO struct {
	UserDTO
	Address      string `json:"address"`
	BankAccount  string `json:"bank_account"`
	OtherContact string `json:"other_contact"`
}

type MediaTotals struct {
	Objects int64 `json:"objects"`
	Media   int64 `json:"media"`
}

// Totals is one row of the user list: either a single user, the unassigned
// tickets, or the whole tracker.
type Totals struct {
	TicketCount         int64           `json:"ticket_count"`
	Media               MediaTotals     `json:"media"`
	AcceptedExpeditures decimal.Decimal `json:"accepted_expeditures"`
	Transactions        decimal.Decimal `json:"transactions"`
}

type UserRow struct {
	UserDTO
	Totals
}

type UserListDTO struct {
	Users      []UserRow `json:"users"`
	Unassigned *Totals   `json:"unassigned,omitempty"`
	Totals     Totals    `json:"totals"`
}

type AdminUserListDTO struct {
	Users               []UserDTO `json:"users"`
	IsTrackerSupervisor bool      `json:"is_tracker_supervisor"`
}
