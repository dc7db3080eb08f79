package offers

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
)

// Service сверяет выбор клиента с текущим предложением провайдера
type Service struct {
	providers map[domain.ProviderType]Provider
	filter    PackageFilter
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(providers []Provider, filter PackageFilter, logger Logger) *Service {
	byType := make(map[domain.ProviderType]Provider, len(providers))
	for _, p := range providers {
		byType[p.Type()] = p
	}

	return &Service{
		providers: byType,
		filter:    filter,
		logger:    logger,
	}
}

// Resolve находит тии-тайм у провайдера поля и возвращает выбранный пакет и доп. услуги по ценам провайдера
// Пакет должен проходить фильтр по времени старта
func (s *Service) Resolve(ctx context.Context, sel Selection) (*Offer, error) {
	provider, ok := s.providers[sel.Course.ProviderType]
	if !ok {
		s.logger.Error("Resolve: provider %s for course=%s is not enabled", sel.Course.ProviderType, sel.Course.ID)
		return nil, fmt.Errorf("%w: provider %s is not enabled", ErrProviderUnavailable, sel.Course.ProviderType)
	}

	teeTimes, err := provider.FetchTeeTimes(ctx, teetimes.Query{
		Course:  sel.Course,
		Date:    time.Date(sel.TeeTime.Year(), sel.TeeTime.Month(), sel.TeeTime.Day(), 0, 0, 0, 0, time.UTC),
		Players: sel.Players,
	})
	if err != nil {
		s.logger.Error("Resolve: provider %s failed for course=%s: %v", sel.Course.ProviderType, sel.Course.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	slot, ok := findSlot(teeTimes, sel.TeeTime)
	if !ok || !slot.HasRoomFor(sel.Players) {
		s.logger.Warn("Resolve: course=%s at %s is not available for %d players",
			sel.Course.ID, sel.TeeTime.Format(time.RFC3339), sel.Players)
		return nil, fmt.Errorf("%w: course %s at %s", ErrTeeTimeUnavailable, sel.Course.ID, sel.TeeTime.Format(time.RFC3339))
	}

	pkg, ok := findPackage(slot, sel.PackageID)
	if !ok {
		s.logger.Warn("Resolve: package id=%s is not offered at course=%s", sel.PackageID, sel.Course.ID)
		return nil, fmt.Errorf("%w: package %s", ErrPackageNotOffered, sel.PackageID)
	}

	if !s.filter.IsEligible(pkg, slot.Time) {
		s.logger.Warn("Resolve: package id=%s (%s) is not eligible at %s", pkg.ID, pkg.Name, slot.Time.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: package %s", ErrPackageNotEligible, pkg.ID)
	}

	addOns, err := findAddOns(slot, sel.AddOnIDs)
	if err != nil {
		s.logger.Warn("Resolve: course=%s: %v", sel.Course.ID, err)
		return nil, err
	}

	return &Offer{
		Package: pkg.ToPackage(),
		AddOns:  addOns,
	}, nil
}
