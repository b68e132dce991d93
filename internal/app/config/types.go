package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App    App
		JWT    JWT
		Stripe Stripe
		Mailer Mailer
	}

	App struct {
		Env                       string
		Port                      string
		MaxRequests               int
		ShutdownTimeout           int
		OptionTemplateCacheTTLMin int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Stripe struct {
		SecretKey string
	}
	Mailer struct {
		Queue       string
		EmailSender string
	}
)
