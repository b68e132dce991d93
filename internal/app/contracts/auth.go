package contracts

import (
	"context"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, email string) (*responses.AccessToken, error)
}
