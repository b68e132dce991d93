package requests

type CreateBooking struct {
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	Treatment       string  `json:"treatment" validate:"required"`
	Patient         string  `json:"patient"`
	Slot            string  `json:"slot" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price"`
}
