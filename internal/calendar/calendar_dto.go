package calendar

type CreateHolidayRequest struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Category string `json:"category" binding:"required,oneof=festival national company"`
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

type WorkingDaysResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	WorkingDays int    `json:"working_days"`
}
