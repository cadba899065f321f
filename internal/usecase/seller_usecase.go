package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
)

// SellerUseCase is the seller directory: it orchestrates the geo/text
// search, the per-seller settings enrichment and the profile upsert.
type SellerUseCase struct {
	sellerRepo   repository.SellerRepository
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
}

func NewSellerUseCase(
	sellerRepo repository.SellerRepository,
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
) *SellerUseCase {
	return &SellerUseCase{
		sellerRepo:   sellerRepo,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// Search returns all matching sellers with their settings merged in.
// Every matched seller yields exactly one result: a failed settings lookup
// degrades that seller to a fallback record instead of failing the batch.
func (uc *SellerUseCase) Search(ctx context.Context, filter repository.SellerFilter) ([]entity.SellerWithSettings, error) {
	sellers, err := uc.sellerRepo.Find(ctx, filter)
	if err != nil {
		logger.Error("Failed to get all sellers: %v", err)
		return nil, errors.Internal("Failed to get all sellers; please try again later", err)
	}

	return uc.resolveSellerSettings(ctx, sellers), nil
}

// resolveSellerSettings enriches each seller independently and concurrently.
// Lookups are read-only and keyed by distinct ids, so no locking is needed
// beyond the join.
func (uc *SellerUseCase) resolveSellerSettings(ctx context.Context, sellers []*entity.Seller) []entity.SellerWithSettings {
	enriched := make([]entity.SellerWithSettings, len(sellers))

	var wg sync.WaitGroup
	for i, seller := range sellers {
		wg.Add(1)
		go func(i int, seller *entity.Seller) {
			defer wg.Done()
			enriched[i] = uc.enrich(ctx, seller)
		}(i, seller)
	}
	wg.Wait()

	return enriched
}

func (uc *SellerUseCase) enrich(ctx context.Context, seller *entity.Seller) entity.SellerWithSettings {
	settings, err := uc.settingsRepo.GetByID(ctx, seller.SellerID)
	if err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to resolve settings for sellerID %s: %v", seller.SellerID, err)
		// Fallback record with minimal information; the lowest trust bucket.
		return entity.SellerWithSettings{
			Seller:           *seller,
			TrustMeterRating: 0,
			TrustMeterLevel:  entity.TrustMeterLevel(0),
			UserName:         seller.Name,
		}
	}
	if settings == nil {
		// No settings registered at all. Distinct from the error fallback:
		// the seller's own name is not substituted here.
		return entity.SellerWithSettings{
			Seller:          *seller,
			TrustMeterLevel: entity.TrustMeterLevel(0),
		}
	}

	return entity.SellerWithSettings{
		Seller:           *seller,
		TrustMeterRating: settings.TrustMeterRating,
		TrustMeterLevel:  entity.TrustMeterLevel(settings.TrustMeterRating),
		UserName:         settings.UserName,
		FindMe:           settings.FindMe,
		Email:            settings.Email,
		PhoneNumber:      settings.PhoneNumber,
	}
}

// GetByID reads the seller profile, settings and identity concurrently,
// all keyed by the same actor id. The profile is nil only when none of the
// three records exist; partial profiles are valid results.
func (uc *SellerUseCase) GetByID(ctx context.Context, id entity.ActorID) (*entity.SellerProfile, error) {
	var profile entity.SellerProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		seller, err := uc.sellerRepo.GetByID(gctx, id)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		profile.SellerShopInfo = seller
		return nil
	})
	g.Go(func() error {
		settings, err := uc.settingsRepo.GetByID(gctx, id)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		profile.SellerSettings = settings
		return nil
	})
	g.Go(func() error {
		user, err := uc.userRepo.GetByID(gctx, id)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		profile.SellerInfo = user
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to get single seller for sellerID %s: %v", id, err)
		return nil, errors.Internal("Failed to get single seller; please try again later", err)
	}

	if profile.Empty() {
		return nil, nil
	}
	return &profile, nil
}

// GetRegistration returns the actor's own seller profile, or nil when they
// never registered. Unlike GetByID it reads the seller record alone.
func (uc *SellerUseCase) GetRegistration(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to get seller registration for sellerID %s: %v", id, err)
		return nil, errors.Internal("Failed to get seller registration; please try again later", err)
	}
	return seller, nil
}

type RegisterSellerInput struct {
	Name               string
	Description        string
	SellerType         string
	Address            string
	SellMapCenter      string // serialized GeoJSON point
	OrderOnlineEnabled *bool
}

// RegisterOrUpdate upserts the seller profile owned by authUser. Field
// resolution per attribute is incoming value, then stored value, then
// default; the map center falls back to the stored center or the origin
// when absent or unparseable.
func (uc *SellerUseCase) RegisterOrUpdate(ctx context.Context, authUser *entity.User, input RegisterSellerInput, imageURL string) (*entity.Seller, error) {
	existing, err := uc.sellerRepo.GetByID(ctx, authUser.UID)
	if err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to register or update seller: %v", err)
		return nil, errors.Internal("Failed to register or update seller; please try again later", err)
	}

	seller := &entity.Seller{
		SellerID:      authUser.UID,
		SellMapCenter: uc.resolveMapCenter(input.SellMapCenter, existing),
	}

	if existing != nil {
		seller.Name = firstNonEmpty(input.Name, existing.Name, authUser.DisplayName)
		seller.Description = firstNonEmpty(input.Description, existing.Description)
		seller.SellerType = firstNonEmpty(input.SellerType, existing.SellerType)
		seller.Image = firstNonEmpty(imageURL, existing.Image)
		seller.Address = firstNonEmpty(input.Address, existing.Address)
		seller.AverageRating = existing.AverageRating
		seller.OrderOnlineEnabled = resolveBool(input.OrderOnlineEnabled, &existing.OrderOnlineEnabled, false)
		seller.CreatedAt = existing.CreatedAt
	} else {
		seller.Name = firstNonEmpty(input.Name, authUser.DisplayName)
		seller.Description = input.Description
		seller.SellerType = input.SellerType
		seller.Image = imageURL
		seller.Address = input.Address
		seller.AverageRating = entity.InitialAverageRating
		seller.OrderOnlineEnabled = false
	}

	if err := uc.sellerRepo.Upsert(ctx, seller); err != nil {
		logger.Error("Failed to register or update seller: %v", err)
		return nil, errors.Internal("Failed to register or update seller; please try again later", err)
	}

	logger.Info("Seller upserted for actor %s", authUser.UID)
	return seller, nil
}

func (uc *SellerUseCase) resolveMapCenter(raw string, existing *entity.Seller) entity.GeoPoint {
	if raw != "" {
		point, err := entity.ParseGeoJSONPoint(raw)
		if err == nil {
			return point
		}
		logger.Warn("Ignoring malformed sell_map_center: %v", err)
	}
	if existing != nil {
		return existing.SellMapCenter
	}
	return entity.Origin()
}

// Delete removes the seller profile only. Settings, identity and historical
// reviews are untouched. A missing profile is a nil result, not an error.
func (uc *SellerUseCase) Delete(ctx context.Context, id entity.ActorID) (*entity.Seller, error) {
	deleted, err := uc.sellerRepo.Delete(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to delete seller for sellerID %s: %v", id, err)
		return nil, errors.Internal("Failed to delete seller; please try again later", err)
	}
	return deleted, nil
}
