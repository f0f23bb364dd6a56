package queries

import (
	"context"
	"database/sql"
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials against the
// stored bcrypt hash. Unknown emails and wrong passwords are
// indistinguishable to the caller.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the credential check and returns the verified identity.
// Any credential failure yields errs.ErrAuthenticationRequired.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			password_hash,
			role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id           int64
		fullName     string
		passwordHash string
		roleName     string
	)

	err := row.Scan(&id, &fullName, &passwordHash, &roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateUserQueryResponse{}, errs.ErrAuthenticationRequired
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if !account.CheckPassword(query.Password(), passwordHash) {
		return AuthenticateUserQueryResponse{}, errs.ErrAuthenticationRequired
	}

	role, err := account.RoleFromString(roleName)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		UserID:   id,
		FullName: fullName,
		Role:     role,
	}, nil
}
