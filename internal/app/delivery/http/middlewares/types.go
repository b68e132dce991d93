package middlewares

import (
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}
