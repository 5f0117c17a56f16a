package inventory

import (
	"fmt"

	"funeraria-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock aborts the surrounding transaction when a decrement
// would drive stock negative. Retryable conflict: the caller decides.
type ErrInsufficientStock struct {
	ProductID uuid.UUID
	Requested int
}

func (e *ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested %d)", e.ProductID, e.Requested)
}

// Deduction is one product decrement request.
type Deduction struct {
	ProductID uuid.UUID
	Quantity  int
}

// Deduct decrements stock for each product with a guarded
// compare-and-decrement: the WHERE clause checks availability and the
// affected-row count decides success, so two concurrent contracts can never
// both win the last unit. Must run inside the finalization transaction.
func Deduct(tx *gorm.DB, items []Deduction) error {
	for _, item := range items {
		res := tx.Model(&domain.Product{}).
			Where("product_id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &ErrInsufficientStock{ProductID: item.ProductID, Requested: item.Quantity}
		}
	}
	return nil
}
