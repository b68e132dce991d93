package main

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/delivery/http/routers"
	"doctorsportal-service/internal/app/drivers/database"
	"doctorsportal-service/internal/app/drivers/logger"
	"doctorsportal-service/internal/app/drivers/messaging"
	"doctorsportal-service/internal/app/services/appointments"
	"doctorsportal-service/internal/app/services/auth"
	"doctorsportal-service/internal/app/services/bookings"
	"doctorsportal-service/internal/app/services/doctors"
	"doctorsportal-service/internal/app/services/payments"
	"doctorsportal-service/internal/app/services/shared/mailer"
	paymentgateway "doctorsportal-service/internal/app/services/shared/payment_gateway"
	"doctorsportal-service/internal/app/services/shared/redis"
	"doctorsportal-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Failed to close drivers cleanly: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	stripeService := paymentgateway.NewStripeService(bootstrap.InternalConfig)
	mailerService, err := mailer.NewMailerService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Mailer.Queue,
		bootstrap.InternalConfig.Mailer.EmailSender,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up mailer service: %v", err)
	}

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, mailerService, bootstrap.Logger)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Appointment options
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		bookingMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Payment
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentMongoRepository,
		bookingMongoRepository,
		stripeService,
		bootstrap.Logger,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, userMongoRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		appointmentController,
		bookingController,
		userController,
		doctorController,
		paymentController,
		authController,
	)
}
