package inventory

import (
	"testing"

	"funeraria-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInventoryTest(t *testing.T, stock int) (*gorm.DB, *domain.Product) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	p := domain.Product{Code: "CKT-01", Name: "Casket", Price: 100000, Stock: stock}
	require.NoError(t, db.Create(&p).Error)
	return db, &p
}

func currentStock(t *testing.T, db *gorm.DB, p *domain.Product) int {
	var got domain.Product
	require.NoError(t, db.First(&got, "product_id = ?", p.ProductID).Error)
	return got.Stock
}

func TestDeduct_Decrements(t *testing.T) {
	db, p := setupInventoryTest(t, 5)
	err := db.Transaction(func(tx *gorm.DB) error {
		return Deduct(tx, []Deduction{{ProductID: p.ProductID, Quantity: 2}})
	})
	require.NoError(t, err)
	assert.Equal(t, 3, currentStock(t, db, p))
}

func TestDeduct_GuardsAgainstNegative(t *testing.T) {
	db, p := setupInventoryTest(t, 2)

	// First taker wins the stock, second fails, stock never goes negative.
	err := db.Transaction(func(tx *gorm.DB) error {
		return Deduct(tx, []Deduction{{ProductID: p.ProductID, Quantity: 2}})
	})
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return Deduct(tx, []Deduction{{ProductID: p.ProductID, Quantity: 2}})
	})
	var stockErr *ErrInsufficientStock
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p.ProductID, stockErr.ProductID)
	assert.Equal(t, 0, currentStock(t, db, p))
}

func TestDeduct_FailureAbortsBatch(t *testing.T) {
	db, p := setupInventoryTest(t, 5)

	other := domain.Product{Code: "URN-01", Name: "Urn", Price: 20000, Stock: 0}
	require.NoError(t, db.Create(&other).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return Deduct(tx, []Deduction{
			{ProductID: p.ProductID, Quantity: 1},
			{ProductID: other.ProductID, Quantity: 1},
		})
	})
	var stockErr *ErrInsufficientStock
	require.ErrorAs(t, err, &stockErr)
	// Transaction rollback restores the first decrement too.
	assert.Equal(t, 5, currentStock(t, db, p))
}
