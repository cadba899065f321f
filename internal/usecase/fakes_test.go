package usecase

import (
	"context"
	"sync"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
)

// In-memory repository fakes. They mirror the adapter contract: missing
// documents come back as NOT_FOUND application errors, and the seller
// store applies the compound filter itself.

type fakeSellerRepo struct {
	mu      sync.Mutex
	sellers map[entity.ActorID]*entity.Seller
	findErr error
}

func newFakeSellerRepo(sellers ...*entity.Seller) *fakeSellerRepo {
	repo := &fakeSellerRepo{sellers: make(map[entity.ActorID]*entity.Seller)}
	for _, s := range sellers {
		repo.sellers[s.SellerID] = s
	}
	return repo
}

func (f *fakeSellerRepo) Find(ctx context.Context, filter repository.SellerFilter) ([]*entity.Seller, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Seller
	for _, s := range f.sellers {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSellerRepo) GetByID(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seller, ok := f.sellers[id]
	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	copied := *seller
	return &copied, nil
}

func (f *fakeSellerRepo) Upsert(ctx context.Context, seller *entity.Seller) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *seller
	f.sellers[seller.SellerID] = &copied
	return nil
}

func (f *fakeSellerRepo) Delete(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seller, ok := f.sellers[id]
	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	delete(f.sellers, id)
	return seller, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[entity.ActorID]*entity.UserSettings
	// failFor simulates a store failure for specific actors only.
	failFor map[entity.ActorID]error
}

func newFakeSettingsRepo(settings ...*entity.UserSettings) *fakeSettingsRepo {
	repo := &fakeSettingsRepo{
		settings: make(map[entity.ActorID]*entity.UserSettings),
		failFor:  make(map[entity.ActorID]error),
	}
	for _, s := range settings {
		repo.settings[s.ID] = s
	}
	return repo
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *settings
	f.settings[settings.ID] = &copied
	return nil
}

func (f *fakeSettingsRepo) GetByID(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[id]; ok {
		return nil, err
	}
	settings, ok := f.settings[id]
	if !ok {
		return nil, errors.NotFound("User settings", nil)
	}
	copied := *settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Delete(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	settings, ok := f.settings[id]
	if !ok {
		return nil, errors.NotFound("User settings", nil)
	}
	delete(f.settings, id)
	return settings, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[entity.ActorID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[entity.ActorID]*entity.User)}
	for _, u := range users {
		repo.users[u.UID] = u
	}
	return repo
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.UID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id entity.ActorID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id entity.ActorID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(f.users, id)
	return nil
}

type fakeAuthClient struct {
	deletedUIDs []string
	deleteErr   error
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", errors.Unauthorized("Invalid or expired token", nil)
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedUIDs = append(f.deletedUIDs, uid)
	return nil
}

func (f *fakeAuthClient) TestConnection(ctx context.Context) error { return nil }

type fakeReviewRepo struct {
	mu        sync.Mutex
	reviews   map[string]*entity.ReviewFeedback
	createErr error
}

func newFakeReviewRepo(reviews ...*entity.ReviewFeedback) *fakeReviewRepo {
	repo := &fakeReviewRepo{reviews: make(map[string]*entity.ReviewFeedback)}
	for _, r := range reviews {
		repo.reviews[r.ID] = r
	}
	return repo
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.ReviewFeedback) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if review.ID == "" {
		review.ID = "review-" + string(rune('a'+len(f.reviews)))
	}
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.ReviewFeedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) ListByReceiver(ctx context.Context, receiverID entity.ActorID) ([]*entity.ReviewFeedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ReviewFeedback
	for _, r := range f.reviews {
		if r.ReceiverID == receiverID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}
