package constvars

const (
	GetAppointmentOptionsSuccessMessage = "Successfully retrieved appointment options"
	GetSpecialtiesSuccessMessage        = "Successfully retrieved specialties"
	GetBookingsSuccessMessage           = "Successfully retrieved bookings"
	GetBookingSuccessMessage            = "Successfully retrieved booking"
	CreateBookingSuccessMessage         = "Successfully created booking"
	RegisterUserSuccessMessage          = "Successfully registered user"
	GetUsersSuccessMessage              = "Successfully retrieved users"
	CheckAdminSuccessMessage            = "Successfully checked admin status"
	PromoteAdminSuccessMessage          = "Successfully promoted user to admin"
	GetDoctorsSuccessMessage            = "Successfully retrieved doctors"
	CreateDoctorSuccessMessage          = "Successfully added doctor"
	DeleteDoctorSuccessMessage          = "Successfully deleted doctor"
	CreatePaymentIntentSuccessMessage   = "Successfully created payment intent"
	RecordPaymentSuccessMessage         = "Successfully recorded payment"
	IssueTokenSuccessMessage            = "Successfully issued access token"
)
