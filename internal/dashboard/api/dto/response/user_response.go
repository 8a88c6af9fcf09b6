package response

import "time"

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Permission string    `json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
}
