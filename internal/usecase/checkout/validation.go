package checkout

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/pkg/ptr"
	"github.com/m04kA/SMC-YogaStore/pkg/validation"
)

// maxCheckoutIDLength ограничение длины идентификатора попытки от клиента
const maxCheckoutIDLength = 128

// normalizeRequest обрезает пробелы во входных данных
func normalizeRequest(req *Request) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.CheckoutID = strings.TrimSpace(req.CheckoutID)

	// Пустое имя равносильно отсутствующему
	name := strings.TrimSpace(ptr.Value(req.UserName))
	req.UserName = nil
	if name != "" {
		req.UserName = ptr.Ptr(name)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID == "" {
		return fmt.Errorf("%w: ownerID is required", ErrInvalidInput)
	}

	if req.UserEmail == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := validation.Email(req.UserEmail, domain.MaxEmailLength); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Message(err))
	}

	if req.UserName != nil && len(*req.UserName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.CheckoutID) > maxCheckoutIDLength {
		return fmt.Errorf("%w: checkoutId must be at most %d characters", ErrInvalidInput, maxCheckoutIDLength)
	}

	return nil
}

// checkoutKey вычисляет ключ попытки оформления
// Содержимое корзины в ключ не входит: после успешного оформления корзина
// очищена, и повтор должен получить тот же ключ
func checkoutKey(ownerID, email, checkoutID string) string {
	sum := sha256.Sum256([]byte(ownerID + "|" + strings.ToLower(email) + "|" + checkoutID))
	return hex.EncodeToString(sum[:])
}
