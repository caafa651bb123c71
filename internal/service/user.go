package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	pkgdb "github.com/Skotchmaster/product_catalog/pkg/db"
	"github.com/Skotchmaster/product_catalog/pkg/tokens"
)

type UserService struct {
	Users repo.UserStore
}

func (s *UserService) CreateUser(ctx context.Context, req transport.UserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, newError(CodeBadRequest, "username is required", ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = tokens.RoleUser
	}
	if role != tokens.RoleUser && role != tokens.RoleAdmin {
		return nil, newError(CodeBadRequest, "unknown role", fmt.Errorf("role %q: %w", role, ErrValidation))
	}

	user := &models.User{Username: username, Role: role}
	if err := s.Users.Save(ctx, user); err != nil {
		if pkgdb.IsUniqueViolation(err) {
			return nil, newError(CodeConflict, "username already exists", fmt.Errorf("%w: %v", ErrUsernameTaken, err))
		}
		return nil, newError(CodeInternal, "user could not be saved", err)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(CodeNotFound, "user not found", fmt.Errorf("user %d: %w", id, ErrUserNotFound))
		}
		return nil, newError(CodeInternal, "user lookup failed", err)
	}
	return user, nil
}
