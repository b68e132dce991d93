package responses

// BookingAcknowledgement mirrors the document-store acknowledgement shape the
// frontend expects. A duplicate booking yields Acknowledged=false plus a
// human-readable conflict message, with HTTP 200.
type BookingAcknowledgement struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
