package usecase

import (
	"context"
	"time"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
)

// UserUseCase maintains the local identity record that mirrors the external
// auth collaborator. Identity issuance and token checks stay external.
type UserUseCase struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	sellerRepo   repository.SellerRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	sellerRepo repository.SellerRepository,
	firebaseAuth FirebaseAuthClient,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		sellerRepo:   sellerRepo,
		firebaseAuth: firebaseAuth,
	}
}

// Authenticate returns the user record for a verified uid, creating it on
// first sight.
func (uc *UserUseCase) Authenticate(ctx context.Context, uid entity.ActorID, username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.IsNotFound(err) {
		logger.Error("Failed to authenticate user %s: %v", uid, err)
		return nil, errors.Internal("Failed to authenticate user; please try again later", err)
	}

	now := time.Now()
	user = &entity.User{
		UID:         uid,
		Username:    username,
		DisplayName: username,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		logger.Error("Failed to create user %s: %v", uid, err)
		return nil, errors.Internal("Failed to authenticate user; please try again later", err)
	}

	logger.Info("New user created: %s", uid)
	return user, nil
}

// GetByID returns the user record, or nil when unknown.
func (uc *UserUseCase) GetByID(ctx context.Context, uid entity.ActorID) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to get user %s: %v", uid, err)
		return nil, errors.Internal("Failed to get user; please try again later", err)
	}
	return user, nil
}

// Delete removes the account: identity, settings, seller profile and the
// external auth account. Only the owner may delete; historical reviews are
// retained.
func (uc *UserUseCase) Delete(ctx context.Context, authUser *entity.User, uid entity.ActorID) error {
	if authUser == nil || authUser.UID != uid {
		logger.Warn("User %v attempted to delete account %s", authUser, uid)
		return errors.Forbidden("User deletion is restricted to the account owner", nil)
	}

	if err := uc.userRepo.Delete(ctx, uid); err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to delete user %s: %v", uid, err)
		return errors.Internal("Failed to delete user; please try again later", err)
	}
	if _, err := uc.settingsRepo.Delete(ctx, uid); err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to delete settings for %s: %v", uid, err)
		return errors.Internal("Failed to delete user; please try again later", err)
	}
	if _, err := uc.sellerRepo.Delete(ctx, uid); err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to delete seller profile for %s: %v", uid, err)
		return errors.Internal("Failed to delete user; please try again later", err)
	}
	if err := uc.firebaseAuth.DeleteUser(ctx, uid.String()); err != nil {
		logger.Error("Failed to delete auth account for %s: %v", uid, err)
		return errors.Internal("Failed to delete user; please try again later", err)
	}

	logger.Info("Deleted account %s", uid)
	return nil
}
