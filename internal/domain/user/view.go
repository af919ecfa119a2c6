package user

import "github.com/yungbote/trackwise-backend/internal/platform/timefmt"

// UserView is the API shape of a user. Credentials and lockout state are
// never included.
type UserView struct {
	ID         uint    `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	LastActive *string `json:"last_active"`
}

func NewUserView(u *User) UserView {
	return UserView{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsActive:   u.Active(),
		CreatedAt:  timefmt.ISO(u.CreatedAt),
		LastActive: timefmt.ISOPtr(u.LastActive),
	}
}
