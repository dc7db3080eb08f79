package add_cart_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/courses"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/offers"
)

// UUIDGenerator генератор UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case добавления тии-тайма в корзину
type UseCase struct {
	cartService   CartService
	courseService CourseService
	offerService  OfferService
	metrics       Metrics
	ids           IDGenerator
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartService CartService,
	courseService CourseService,
	offerService OfferService,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartService:   cartService,
		courseService: courseService,
		offerService:  offerService,
		metrics:       metrics,
		ids:           UUIDGenerator{},
		logger:        logger,
	}
}

// Execute добавляет позицию в корзину
// Пересечение по времени блокирует добавление всегда,
// то же поле в тот же день требует acknowledgeConflicts
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCartItem: session=%s, course=%s, time=%s, players=%d",
		req.SessionID, req.CourseID, req.Time, req.Players)

	// 1. Валидация входных данных
	teeTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AddCartItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Поле должно существовать и быть активным
	course, err := uc.courseService.GetActive(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courses.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("AddCartItem: failed to get course id=%s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	// 3. Пакет, доп. услуги и цены берём из предложения провайдера, а не из запроса
	offer, err := uc.offerService.Resolve(ctx, offers.Selection{
		Course:    *course,
		TeeTime:   teeTime,
		Players:   req.Players,
		PackageID: req.Package.ID,
		AddOnIDs:  addOnIDs(req.AddOns),
	})
	if err != nil {
		return nil, offerError(err)
	}

	addOns := domain.PriceAddOns(offer.AddOns, req.Players)
	item := domain.CartItem{
		ID:           uc.ids.NewID(),
		CourseID:     course.ID,
		CourseName:   course.Name,
		Date:         teeTime.Format(domain.DateFormat),
		Time:         req.Time,
		Players:      req.Players,
		Package:      offer.Package,
		AddOns:       addOns,
		TotalPrice:   domain.ItemTotal(offer.Package, req.Players, addOns),
		ProviderType: course.ProviderType,
	}

	resp := &Response{Item: item}

	// 4. Проверка конфликтов и запись под блокировкой сессии
	err = uc.cartService.WithCart(ctx, req.SessionID, func(store *cart.Store) error {
		// Замена позиции с тем же ключом не конфликтует сама с собой
		others := make([]domain.CartItem, 0, store.ItemCount())
		for _, existing := range store.Items() {
			if existing.SameSlot(item.CourseID, item.Time) {
				resp.Replaced = true
				continue
			}
			others = append(others, existing)
		}

		conflicts := domain.DetectConflicts(others, item.CourseID, item.Date, item.Time)
		for _, c := range conflicts {
			uc.metrics.ObserveConflict(string(c.Type))
		}

		if domain.HasBlockingConflict(conflicts) {
			return &ConflictError{Conflicts: conflicts, Blocking: true}
		}
		if len(conflicts) > 0 && !req.AcknowledgeConflicts {
			return &ConflictError{Conflicts: conflicts}
		}

		if err := store.AddItem(ctx, item); err != nil {
			return err
		}

		resp.Conflicts = conflicts
		resp.Cart = cart.Summarize(req.SessionID, store)
		return nil
	})

	if err != nil {
		var conflictErr *ConflictError
		switch {
		case errors.As(err, &conflictErr):
			uc.logger.Warn("AddCartItem: session=%s rejected: %v", req.SessionID, err)
			return nil, err
		case errors.Is(err, cart.ErrInvalidSession):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("AddCartItem: failed to update cart session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to update cart: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("AddCartItem: session=%s, item=%s added (replaced=%t), total=%.2f",
		req.SessionID, item.ID, resp.Replaced, resp.Cart.TotalPrice)
	return resp, nil
}


func addOnIDs(addOns []domain.AddOnOption) []string {
	ids := make([]string, 0, len(addOns))
	for _, a := range addOns {
		ids = append(ids, a.ID)
	}
	return ids
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
