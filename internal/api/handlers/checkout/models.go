package checkout

import (
	"time"

	catalogModels "github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
	checkoutUC "github.com/m04kA/SMC-YogaStore/internal/usecase/checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	UserEmail  string  `json:"userEmail" validate:"required,max=254"`
	UserName   *string `json:"userName,omitempty" validate:"omitempty,max=200"`
	CheckoutID string  `json:"checkoutId,omitempty" validate:"omitempty,max=128"` // повтор с тем же ID вернёт то же бронирование
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	BookingID      string                        `json:"bookingId"`
	UserID         string                        `json:"userId"`
	UserEmail      string                        `json:"userEmail"`
	Classes        []catalogModels.ClassResponse `json:"classes"`
	TotalClasses   int                           `json:"totalClasses"`
	Status         string                        `json:"status"`
	CheckoutID     string                        `json:"checkoutId"`
	UserBookingIDs []string                      `json:"userBookingIds"`
	Replayed       bool                          `json:"replayed"`
	CreatedAt      string                        `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckoutRequest) ToUseCaseRequest(ownerID string) *checkoutUC.Request {
	return &checkoutUC.Request{
		OwnerID:    ownerID,
		UserEmail:  r.UserEmail,
		UserName:   r.UserName,
		CheckoutID: r.CheckoutID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	classes := make([]catalogModels.ClassResponse, 0, len(resp.Classes))
	for i := range resp.Classes {
		classes = append(classes, *catalogModels.FromDomainClass(&resp.Classes[i]))
	}

	ids := resp.UserBookingIDs
	if ids == nil {
		ids = []string{}
	}

	return &CheckoutResponse{
		BookingID:      resp.BookingID,
		UserID:         resp.UserID,
		UserEmail:      resp.UserEmail,
		Classes:        classes,
		TotalClasses:   resp.TotalClasses,
		Status:         resp.Status,
		CheckoutID:     resp.CheckoutID,
		UserBookingIDs: ids,
		Replayed:       resp.Replayed,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
