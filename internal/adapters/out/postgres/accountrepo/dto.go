// Package accountrepo provides data transfer objects and mapping functions
// for user persistence.
package accountrepo

import (
	"gelsin/internal/core/domain/model/account"
)

// UserDTO represents the database structure for persisting users. The
// unique email index backs the registration uniqueness guarantee.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FullName     string `gorm:"type:varchar(120)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(120)"`
	Role         string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID(),
		FullName:     user.FullName(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role().String(),
	}
}

// toDomain converts a database DTO to a user entity.
func toDomain(dto UserDTO) (*account.User, error) {
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(dto.ID, dto.FullName, dto.Email, dto.PasswordHash, role)
}
