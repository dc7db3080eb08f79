package update_cart_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/offers"
)

// UseCase use case изменения позиции корзины
type UseCase struct {
	cartService   CartService
	courseService CourseService
	offerService  OfferService
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cartService CartService, courseService CourseService, offerService OfferService, logger Logger) *UseCase {
	return &UseCase{
		cartService:   cartService,
		courseService: courseService,
		offerService:  offerService,
		logger:        logger,
	}
}

// Execute применяет частичное обновление и пересчитывает стоимость позиции
// Пакет, доп. услуги и их цены заново сверяются с предложением провайдера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateCartItem: session=%s, item=%s", req.SessionID, req.ItemID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateCartItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущая позиция
	var current domain.CartItem
	err := uc.cartService.WithCart(ctx, req.SessionID, func(store *cart.Store) error {
		item, ok := store.Item(req.ItemID)
		if !ok {
			return ErrItemNotFound
		}
		current = item
		return nil
	})
	if err != nil {
		return nil, uc.cartError(req, err)
	}

	// 3. Сверка с провайдером вне блокировки корзины
	teeTime, err := domain.ParseTeeTime(current.Time)
	if err != nil {
		uc.logger.Error("UpdateCartItem: item=%s has invalid time %q", current.ID, current.Time)
		return nil, fmt.Errorf("%w: invalid stored time %q", ErrInternal, current.Time)
	}

	course, err := uc.courseService.GetActive(ctx, current.CourseID)
	if err != nil {
		if errors.Is(err, courses.ErrCourseNotFound) {
			uc.logger.Warn("UpdateCartItem: course=%s of item=%s is no longer active", current.CourseID, current.ID)
			return nil, fmt.Errorf("%w: course %s is not active", ErrTeeTimeUnavailable, current.CourseID)
		}
		uc.logger.Error("UpdateCartItem: failed to get course id=%s: %v", current.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	players, packageID, addOnIDs := selection(req, current)
	offer, err := uc.offerService.Resolve(ctx, offers.Selection{
		Course:    *course,
		TeeTime:   teeTime,
		Players:   players,
		PackageID: packageID,
		AddOnIDs:  addOnIDs,
	})
	if err != nil {
		return nil, offerError(err)
	}

	addOns := domain.PriceAddOns(offer.AddOns, players)
	total := domain.ItemTotal(offer.Package, players, addOns)
	patch := domain.CartItemPatch{
		Players:    &players,
		Package:    &offer.Package,
		AddOns:     addOns,
		TotalPrice: &total,
	}

	// 4. Запись под блокировкой сессии
	var resp *Response
	err = uc.cartService.WithCart(ctx, req.SessionID, func(store *cart.Store) error {
		if _, ok := store.Item(req.ItemID); !ok {
			return ErrItemNotFound
		}
		if err := store.UpdateItem(ctx, req.ItemID, patch); err != nil {
			return err
		}

		updated, _ := store.Item(req.ItemID)
		resp = &Response{
			Item: updated,
			Cart: cart.Summarize(req.SessionID, store),
		}
		return nil
	})
	if err != nil {
		return nil, uc.cartError(req, err)
	}

	uc.logger.Info("UpdateCartItem: session=%s, item=%s, total=%.2f", req.SessionID, req.ItemID, resp.Item.TotalPrice)
	return resp, nil
}

func (uc *UseCase) cartError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound):
		uc.logger.Warn("UpdateCartItem: item=%s not found in session=%s", req.ItemID, req.SessionID)
		return err
	case errors.Is(err, cart.ErrInvalidSession):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("UpdateCartItem: failed to update cart session=%s: %v", req.SessionID, err)
		return fmt.Errorf("%w: failed to update cart: %v", ErrInternal, err)
	}
}

// offerError переводит ошибки сверки с провайдером в ошибки use case
func offerError(err error) error {
	switch {
	case errors.Is(err, offers.ErrTeeTimeUnavailable):
		return fmt.Errorf("%w: %v", ErrTeeTimeUnavailable, err)
	case errors.Is(err, offers.ErrPackageNotOffered):
		return fmt.Errorf("%w: %v", ErrPackageNotOffered, err)
	case errors.Is(err, offers.ErrPackageNotEligible):
		return fmt.Errorf("%w: %v", ErrPackageNotEligible, err)
	case errors.Is(err, offers.ErrProviderUnavailable):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	default:
		return fmt.Errorf("%w: failed to resolve offer: %v", ErrInternal, err)
	}
}
