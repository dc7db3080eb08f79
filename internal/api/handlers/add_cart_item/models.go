package add_cart_item

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	addCartItem "github.com/m04kA/SMC-TeeTimeService/internal/usecase/add_cart_item"
)

// AddCartItemRequest HTTP request model
type AddCartItemRequest struct {
	CourseID             string               `json:"courseId"`
	Date                 string               `json:"date,omitempty"` // "2025-06-01"
	Time                 string               `json:"time"`           // "2025-06-01T09:30:00+02:00"
	Players              int                  `json:"players"`
	Package              domain.Package       `json:"package"`
	AddOns               []domain.AddOnOption `json:"addOns"`
	AcknowledgeConflicts bool                 `json:"acknowledgeConflicts"`
}

// AddCartItemResponse HTTP response model
type AddCartItemResponse struct {
	Item      domain.CartItem        `json:"item"`
	Replaced  bool                   `json:"replaced"`
	Conflicts []domain.Conflict      `json:"conflicts"`
	Cart      *handlers.CartResponse `json:"cart"`
}

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Code                    int               `json:"code"`
	Message                 string            `json:"message"`
	Conflicts               []domain.Conflict `json:"conflicts"`
	Blocking                bool              `json:"blocking"`
	RequiresAcknowledgement bool              `json:"requiresAcknowledgement"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddCartItemRequest) ToUseCaseRequest(sessionID string) *addCartItem.Request {
	return &addCartItem.Request{
		SessionID:            sessionID,
		CourseID:             r.CourseID,
		Date:                 r.Date,
		Time:                 r.Time,
		Players:              r.Players,
		Package:              r.Package,
		AddOns:               r.AddOns,
		AcknowledgeConflicts: r.AcknowledgeConflicts,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addCartItem.Response) *AddCartItemResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []domain.Conflict{}
	}
	return &AddCartItemResponse{
		Item:      resp.Item,
		Replaced:  resp.Replaced,
		Conflicts: conflicts,
		Cart:      handlers.FromCartSummary(resp.Cart),
	}
}
