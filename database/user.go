package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when the email or username is already taken.
	ErrDuplicate = errors.New("email or username already taken")
	// ErrEmptyPassword is returned when signup is attempted without a password.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so callers cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// SignupUser creates a new user with a bcrypt-hashed password.
// An empty password fails before anything is hashed or stored.
func (d *DB) SignupUser(ctx context.Context, email, username, password string) (*User, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Email:    email,
		Username: username,
		Password: string(hash),
	}
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser looks up the user by username and verifies the password
// against the stored hash. The failure value is the same whether the
// username is unknown or the password is wrong.
func (d *DB) AuthenticateUser(ctx context.Context, username, password string) (*User, error) {
	var user User
	if err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to look up user", "error", err)
		}
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser returns the user with the given id.
func (d *DB) GetUser(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := d.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user and exactly that user's like edges.
// Shared GovMember rows are left intact.
func (d *DB) DeleteUser(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}
