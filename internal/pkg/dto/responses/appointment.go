package responses

// AppointmentOption carries a treatment template with its slots reduced to
// the ones still free on the requested date.
type AppointmentOption struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price float64  `json:"price"`
}

// Specialty is the name-only projection used by the specialty selector.
type Specialty struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
