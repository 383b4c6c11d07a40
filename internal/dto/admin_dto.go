package dto

type SetRoleInput struct {
	Role string `json:"role" binding:"required,oneof=student owner admin"`
}

type SetBlockedInput struct {
	IsBlocked *bool `json:"is_blocked" binding:"required"`
}
