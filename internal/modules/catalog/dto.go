package catalog

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	HourlyRate  *float64 `json:"hourly_rate"`
	Capacity    *int     `json:"capacity"`
	IsActive    *bool    `json:"is_active"`
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Company string `json:"company"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company"`
}
