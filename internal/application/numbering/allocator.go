package numbering

import (
	"fmt"
	"regexp"
	"strconv"

	"funeraria-backend/internal/domain"

	"gorm.io/gorm"
)

const counterName = "contract_number"

// Allocator produces the next contract number `PREFIX-NNNNNN`. The sequence
// lives in a single counters row and is incremented inside the caller's
// transaction, so the row lock is held until that transaction commits and two
// concurrent finalizations can never observe the same value.
//
// The first allocation ever seeds the counter from the highest numeric suffix
// across all existing contracts, soft-deleted ones included.
type Allocator struct {
	Prefix string
}

// Next allocates the next number. tx must be the surrounding finalization
// transaction, never a bare session.
func (a *Allocator) Next(tx *gorm.DB) (string, error) {
	res := tx.Model(&domain.Counter{}).
		Where("name = ?", counterName).
		Update("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 0 {
		max, err := a.scanMax(tx)
		if err != nil {
			return "", err
		}
		// First allocation: a concurrent seeder loses on the primary key
		// and surfaces as a retryable conflict.
		counter := domain.Counter{Name: counterName, Value: max + 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
		return a.format(counter.Value), nil
	}

	var counter domain.Counter
	if err := tx.Where("name = ?", counterName).First(&counter).Error; err != nil {
		return "", err
	}
	return a.format(counter.Value), nil
}

// scanMax extracts the numeric suffix of every historical number matching
// the prefix pattern and returns the highest, or 0 when none exist.
// Non-matching or zero suffixes are ignored.
func (a *Allocator) scanMax(tx *gorm.DB) (int64, error) {
	var numbers []string
	if err := tx.Model(&domain.Contract{}).Unscoped().Pluck("number", &numbers).Error; err != nil {
		return 0, err
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(a.Prefix) + `-(\d{6})$`)
	var max int64
	for _, n := range numbers {
		m := pattern.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || v == 0 {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max, nil
}

func (a *Allocator) format(v int64) string {
	return fmt.Sprintf("%s-%06d", a.Prefix, v)
}
