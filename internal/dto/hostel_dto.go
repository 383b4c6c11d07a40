package dto

type CreateHostelInput struct {
	Name          string  `json:"name" form:"name" binding:"required,min=3,max=100"`
	Address       string  `json:"address" form:"address" binding:"required,max=255"`
	City          string  `json:"city" form:"city" binding:"required,max=100"`
	Description   *string `json:"description" form:"description" binding:"omitempty,max=2000"`
	PricePerMonth int64   `json:"price_per_month" form:"price_per_month" binding:"required,gt=0"`
	TotalRooms    int     `json:"total_rooms" form:"total_rooms" binding:"required,gt=0"`
}

type UpdateHostelInput struct {
	Name          *string `json:"name" binding:"omitempty,min=3,max=100"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	Description   *string `json:"description" binding:"omitempty,max=2000"`
	PricePerMonth *int64  `json:"price_per_month" binding:"omitempty,gt=0"`
	TotalRooms    *int    `json:"total_rooms" binding:"omitempty,gt=0"`
}
