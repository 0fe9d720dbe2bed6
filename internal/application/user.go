package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/domain/finance"
	"github.com/linskybing/grant-tracker/internal/domain/permission"
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/internal/metrics"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

type UserDetail struct {
	User    user.UserDTO     `json:"user"`
	Tickets []TicketListItem `json:"tickets"`
	Totals  user.Totals      `json:"totals"`
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !isNotFound(err) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Username:  input.Username,
		Password:  string(hashed),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		metrics.AuthAttemptsCounter.WithLabelValues("unknown_user").Inc()
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		metrics.AuthAttemptsCounter.WithLabelValues("bad_password").Inc()
		return user.User{}, "", ErrInvalidCredentials
	}

	expiry := config.JwtExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	token, err := middleware.GenerateToken(usr, expiry)
	if err != nil {
		return user.User{}, "", err
	}
	metrics.AuthAttemptsCounter.WithLabelValues("success").Inc()
	return usr, token, nil
}

func (s *UserService) GetDetails(uid uint) (user.DetailsDTO, error) {
	usr, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return user.DetailsDTO{}, notFound(err, "user", uid)
	}
	profile, err := s.Repos.User.GetProfile(uid)
	if err != nil && !isNotFound(err) {
		return user.DetailsDTO{}, err
	}
	return detailsDTO(usr, profile), nil
}

// UpdateDetails changes the name, email and every profile field. The profile
// is created on first save.
func (s *UserService) UpdateDetails(c *gin.Context, uid uint, input user.UpdateDetailsInput) (user.DetailsDTO, error) {
	usr, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return user.DetailsDTO{}, notFound(err, "user", uid)
	}
	profile, err := s.Repos.User.GetProfile(uid)
	if err != nil && !isNotFound(err) {
		return user.DetailsDTO{}, err
	}
	old := detailsDTO(usr, profile)

	usr.FirstName = input.FirstName
	usr.LastName = input.LastName
	usr.Email = input.Email
	profile.UserID = uid
	profile.Address = input.Address
	profile.BankAccount = input.BankAccount
	profile.OtherContact = input.OtherContact

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.User.SaveUser(&usr); err != nil {
			return err
		}
		return r.User.SaveProfile(&profile)
	})
	if err != nil {
		return user.DetailsDTO{}, err
	}

	out := detailsDTO(usr, profile)
	recordAudit(c, s.Repos, audit.Entry{
		Action:     audit.ActionUpdate,
		Resource:   audit.ResourceUserDetails,
		ResourceID: uid,
		Before:     old,
		After:      out,
	})
	return out, nil
}

func detailsDTO(u user.User, p user.UserProfile) user.DetailsDTO {
	return user.DetailsDTO{
		UserDTO:      user.ToDTO(u),
		Address:      p.Address,
		BankAccount:  p.BankAccount,
		OtherContact: p.OtherContact,
	}
}

// ListUsersWithTotals is the public user table: per-user ticket figures, a
// block for tickets nobody owns and the tracker-wide totals.
func (s *UserService) ListUsersWithTotals() (user.UserListDTO, error) {
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return user.UserListDTO{}, err
	}
	tickets, err := s.Repos.Ticket.ListTickets(repository.TicketFilter{})
	if err != nil {
		return user.UserListDTO{}, err
	}
	txs, err := s.Repos.Transaction.ListTransactions()
	if err != nil {
		return user.UserListDTO{}, err
	}
	txTotal, err := s.Repos.Transaction.SumAmounts()
	if err != nil {
		return user.UserListDTO{}, err
	}

	byUser := map[uint][]ticket.Ticket{}
	var unassigned []ticket.Ticket
	for _, t := range tickets {
		if t.RequestedUserID == nil {
			unassigned = append(unassigned, t)
			continue
		}
		byUser[*t.RequestedUserID] = append(byUser[*t.RequestedUserID], t)
	}
	paidTo := map[uint]decimal.Decimal{}
	for _, tx := range txs {
		if tx.OtherPartyID != nil {
			paidTo[*tx.OtherPartyID] = paidTo[*tx.OtherPartyID].Add(tx.Amount)
		}
	}

	out := user.UserListDTO{Users: make([]user.UserRow, 0, len(users))}
	for _, u := range users {
		totals := ticketTotals(byUser[u.UID])
		totals.Transactions = paidTo[u.UID]
		out.Users = append(out.Users, user.UserRow{UserDTO: user.ToPublicDTO(u), Totals: totals})
	}
	if len(unassigned) > 0 {
		un := ticketTotals(unassigned)
		out.Unassigned = &un
	}
	out.Totals = ticketTotals(tickets)
	out.Totals.Transactions = txTotal
	return out, nil
}

func ticketTotals(tickets []ticket.Ticket) user.Totals {
	totals := user.Totals{
		TicketCount:         int64(len(tickets)),
		AcceptedExpeditures: finance.TicketsAccepted(tickets),
	}
	for _, t := range tickets {
		for _, m := range t.MediaInfos {
			totals.Media.Objects++
			if m.Count != nil {
				totals.Media.Media += int64(*m.Count)
			}
		}
	}
	return totals
}

func (s *UserService) GetUserDetail(username string) (UserDetail, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return UserDetail{}, notFound(err, "user", username)
	}
	uid := usr.UID
	tickets, err := s.Repos.Ticket.ListTickets(repository.TicketFilter{RequestedUserID: &uid})
	if err != nil {
		return UserDetail{}, err
	}
	return UserDetail{
		User:    user.ToPublicDTO(usr),
		Tickets: listItems(tickets),
		Totals:  ticketTotals(tickets),
	}, nil
}

func (s *UserService) AdminListUsers(actor permission.Actor) (user.AdminUserListDTO, error) {
	if !actor.Staff {
		return user.AdminUserListDTO{}, ErrPermissionDenied
	}
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return user.AdminUserListDTO{}, err
	}
	out := user.AdminUserListDTO{
		Users:               make([]user.UserDTO, 0, len(users)),
		IsTrackerSupervisor: actor.Supervisor,
	}
	for _, u := range users {
		out.Users = append(out.Users, user.ToDTO(u))
	}
	return out, nil
}
