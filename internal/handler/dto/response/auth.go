package response

import (
	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// LoginResponse mirrors the session cookies for clients that keep tokens themselves.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	User         *UserResponse `json:"user,omitempty"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	if v == nil {
		return nil
	}
	var res UserResponse
	_ = copier.Copy(&res, v)
	res.ID = v.ID.String()
	return &res
}
