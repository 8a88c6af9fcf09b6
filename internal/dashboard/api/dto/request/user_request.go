package request

type InviteUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Permission string `json:"permission" binding:"required"`
}

type ChangePermissionRequest struct {
	Permission string `json:"permission" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=3,max=40"`
	Password string `json:"password" binding:"omitempty,min=8"`
}
