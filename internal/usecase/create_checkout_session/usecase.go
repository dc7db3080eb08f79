package create_checkout_session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
)

// expireTimeout время на закрытие платёжной сессии при откате
const expireTimeout = 10 * time.Second

// UseCase use case оформления корзины в платёжную сессию
type UseCase struct {
	cartService    CartService
	paymentsClient PaymentsClient
	bookingService BookingService
	settings       Settings
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartService CartService,
	paymentsClient PaymentsClient,
	bookingService BookingService,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartService:    cartService,
		paymentsClient: paymentsClient,
		bookingService: bookingService,
		settings:       settings,
		logger:         logger,
	}
}

// Execute создает хостированную платёжную сессию и pending бронирования по позициям корзины
// Корзина не очищается до подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckoutSession: cart session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckoutSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем корзину
	summary, err := uc.cartService.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidSession) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateCheckoutSession: failed to load cart session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	// 3. Собираем запрос платёжной сессии
	checkout, err := domain.BuildCheckoutSession(req.SessionID, summary.Items, req.Customer, uc.settings.Currency)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			uc.logger.Warn("CreateCheckoutSession: cart session=%s is empty", req.SessionID)
			return nil, ErrEmptyCart
		}
		return nil, fmt.Errorf("%w: failed to build checkout: %v", ErrInternal, err)
	}
	checkout.SuccessURL = uc.settings.SuccessURL
	checkout.CancelURL = uc.settings.CancelURL

	// 4. Создаем сессию у платёжного шлюза
	session, err := uc.paymentsClient.CreateSession(ctx, toPaymentsRequest(checkout))
	if err != nil {
		if errors.Is(err, payments.ErrRejected) {
			uc.logger.Warn("CreateCheckoutSession: payment provider rejected cart session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentRejected, err)
		}
		uc.logger.Error("CreateCheckoutSession: failed to create payment session for cart=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create payment session: %v", ErrInternal, err)
	}

	// 5. Сохраняем pending бронирования
	bookings := make([]*domain.Booking, 0, len(summary.Items))
	for _, item := range summary.Items {
		bookings = append(bookings, toBooking(session.ID, req, item))
	}
	if _, err := uc.bookingService.CreatePending(ctx, bookings); err != nil {
		uc.logger.Error("CreateCheckoutSession: failed to store bookings for payment session=%s: %v", session.ID, err)
		// Сессию без бронирований нельзя оставлять оплачиваемой
		uc.expireOrphan(ctx, session.ID)
		return nil, fmt.Errorf("%w: failed to store bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCheckoutSession: payment session=%s created for cart=%s, items=%d, total=%.2f %s",
		session.ID, req.SessionID, len(summary.Items), checkout.TotalPrice, checkout.Currency)

	return &Response{
		PaymentSessionID: session.ID,
		URL:              session.URL,
		TotalPrice:       checkout.TotalPrice,
		Currency:         checkout.Currency,
		ItemCount:        len(summary.Items),
	}, nil
}

// expireOrphan закрывает платёжную сессию, для которой не удалось сохранить бронирования
// Отмена запроса клиента не должна прерывать компенсацию
func (uc *UseCase) expireOrphan(ctx context.Context, paymentSessionID string) {
	expireCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), expireTimeout)
	defer cancel()

	if _, err := uc.paymentsClient.ExpireSession(expireCtx, paymentSessionID); err != nil {
		uc.logger.Error("CreateCheckoutSession: failed to expire orphan payment session=%s: %v", paymentSessionID, err)
		return
	}
	uc.logger.Warn("CreateCheckoutSession: orphan payment session=%s expired", paymentSessionID)
}

func toPaymentsRequest(checkout *domain.CheckoutSessionRequest) *payments.CreateSessionRequest {
	lineItems := make([]payments.LineItem, 0, len(checkout.Lines))
	for _, line := range checkout.Lines {
		lineItems = append(lineItems, payments.LineItem{
			Name:        fmt.Sprintf("%s, %s %s", line.CourseName, line.Date, clock(line.Time)),
			Description: describe(line),
			Amount:      line.AmountMinor,
			Quantity:    1,
		})
	}

	return &payments.CreateSessionRequest{
		Mode:              "payment",
		Currency:          checkout.Currency,
		CustomerEmail:     checkout.Customer.Email,
		ClientReferenceID: checkout.CartSessionID,
		SuccessURL:        checkout.SuccessURL,
		CancelURL:         checkout.CancelURL,
		LineItems:         lineItems,
		Metadata: map[string]string{
			"cart_session_id": checkout.CartSessionID,
			"customer_name":   checkout.Customer.Name,
		},
	}
}

func describe(line domain.CheckoutLine) string {
	parts := []string{fmt.Sprintf("%d player(s)", line.Players), line.PackageName}
	for _, a := range line.AddOns {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, ", ")
}

func clock(teeTime string) string {
	t, err := domain.ParseTeeTime(teeTime)
	if err != nil {
		return teeTime
	}
	return t.Format(domain.TimeFormat)
}

func toBooking(paymentSessionID string, req *Request, item domain.CartItem) *domain.Booking {
	teeTime, _ := domain.ParseTeeTime(item.Time)
	return &domain.Booking{
		PaymentSessionID: paymentSessionID,
		CartSessionID:    req.SessionID,
		CartItemID:       item.ID,
		CourseID:         item.CourseID,
		CourseName:       item.CourseName,
		ProviderType:     item.ProviderType,
		TeeTime:          teeTime,
		Players:          item.Players,
		PackageID:        item.Package.ID,
		PackageName:      item.Package.Name,
		AddOns:           item.AddOns,
		TotalPrice:       item.TotalPrice,
		CustomerName:     req.Customer.Name,
		CustomerEmail:    req.Customer.Email,
		CustomerPhone:    req.Customer.Phone,
		Status:           domain.StatusPending,
	}
}
