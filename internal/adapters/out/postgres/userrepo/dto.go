// Package userrepo provides data transfer objects and mapping functions for
// user account persistence. Only the bcrypt hash of the password is ever
// stored.
package userrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);column:password_hash"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(30)"`
	Role         string `gorm:"type:varchar(30)"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database
// representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Int(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewOperatorID(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Username, dto.PasswordHash,
		dto.FirstName, dto.LastName, dto.Phone,
		dto.Role,
	)
}
