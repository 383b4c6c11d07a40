package dto

type JoinHostelInput struct {
	InviteCode    string  `json:"invite_code" binding:"required,kostcode"`
	RoomNumber    *string `json:"room_number" binding:"omitempty,max=20"`
	GuardianPhone *string `json:"guardian_phone" binding:"omitempty,max=30"`
}
