package models

import (
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	catalogModels "github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

// Request модели

// AddItemRequest запрос на добавление занятия в корзину
type AddItemRequest struct {
	ClassID string `json:"classId" validate:"required,max=128"`
}

// Response модели

// CartItemResponse позиция корзины со снимком занятия
type CartItemResponse struct {
	ID        string                      `json:"id"`
	YogaClass catalogModels.ClassResponse `json:"yogaClass"`
	AddedAt   time.Time                   `json:"addedAt"`
}

// CartResponse содержимое корзины
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
}

// ClearCartResponse результат очистки корзины
type ClearCartResponse struct {
	Removed int64 `json:"removed"`
}

// Методы конвертации

// FromDomainCartItem конвертирует domain модель в DTO
func FromDomainCartItem(item *domain.CartItem) *CartItemResponse {
	if item == nil {
		return nil
	}

	return &CartItemResponse{
		ID:        item.ID,
		YogaClass: *catalogModels.FromDomainClass(&item.YogaClass),
		AddedAt:   item.AddedAt,
	}
}

// FromDomainCart конвертирует список позиций в DTO
func FromDomainCart(items []*domain.CartItem) *CartResponse {
	resp := &CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainCartItem(item); itemResp != nil {
			resp.Items = append(resp.Items, *itemResp)
		}
	}
	resp.TotalItems = len(resp.Items)

	return resp
}
