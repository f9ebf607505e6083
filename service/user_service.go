// service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/dao"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListReviewers(ctx context.Context) ([]model.User, error)
}

// UserService handles business logic for user operations
type UserService struct {
	userRepo       dao.UserRepository
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(repos dao.Repositories, validationUtil *util.ValidationUtil, cacheService *util.CacheService) *UserService {
	return &UserService{
		userRepo:       repos.Users,
		validationUtil: validationUtil,
		cacheService:   cacheService,
	}
}

// GetUser resolves a user, consulting the cache first.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, docflow_errors.ErrUserNotFound
	}
	if cached, err := s.cacheService.GetUser(ctx, userID); err != nil {
		logger.Warn("Failed to get user from cache", zap.Error(err), zap.String("userID", userID))
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, docflow_errors.ErrUserNotFound) {
			return nil, err
		}
		logger.Error("Error retrieving user", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := s.validationUtil.ValidateUser(user); err != nil {
		logger.Error("Stored user is invalid", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%w: %w", docflow_errors.ErrInvalidUserData, err)
	}

	if err := s.cacheService.SetUser(ctx, user); err != nil {
		logger.Warn("Failed to cache user", zap.Error(err), zap.String("userID", userID))
	}
	return &user, nil
}

// ListUsers returns the directory ordered by name.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("Error listing users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// ListReviewers returns the users a document can be assigned to.
func (s *UserService) ListReviewers(ctx context.Context) ([]model.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	reviewers := users[:0]
	for _, u := range users {
		if u.Role.CanReview() {
			reviewers = append(reviewers, u)
		}
	}
	return reviewers, nil
}
