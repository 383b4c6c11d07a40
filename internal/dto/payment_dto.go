package dto

type GenerateDuesInput struct {
	Month  string `json:"month" binding:"required,month"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}
