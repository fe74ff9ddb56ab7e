package usecase

import "github.com/controledecontas/expenses-backend/internal/domain/models"

// AuthenticateUser resolves a (user id, credential) pair into the stored user.
// Returns nil without error when the pair matches no user.
type AuthenticateUser interface {
	Authenticate(userId string, credential models.Credential) (*models.User, error)
}
