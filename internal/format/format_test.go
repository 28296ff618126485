package format

import (
	"strings"
	"testing"
	"time"

	"sklad/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_English(t *testing.T) {
	f := New("en")
	assert.Equal(t, "1,234.50 RUB", f.Money(1234.5))
	assert.Equal(t, "2.5 пог. м.", f.Quantity(2.5, entities.UnitMeter))
	assert.Equal(t, "3", f.Quantity(3, ""))
	assert.Equal(t, "12.5%", f.Percent(12.5))
}

func TestFormatter_Russian(t *testing.T) {
	f := New("ru")
	money := f.Money(1234.5)
	assert.True(t, strings.HasSuffix(money, "234,50 ₽"), money)
	assert.Equal(t, "2,5 шт.", f.Quantity(2.5, entities.UnitPiece))

	assert.Equal(t, New("not a tag").Money(1), f.Money(1), "unknown locale falls back to Russian")
}

func TestFormatter_Dates(t *testing.T) {
	f := New("ru")
	ts := time.Date(2025, 1, 31, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "31.01.2025", f.Date(ts))
	assert.Equal(t, "31.01.2025 09:05", f.DateTime(ts))
	assert.Empty(t, f.Date(time.Time{}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Труба", Truncate("Труба", 10))
	assert.Equal(t, "Тру…", Truncate("Труба стальная", 4))
	assert.Equal(t, "…", Truncate("Труба", 1))
}
