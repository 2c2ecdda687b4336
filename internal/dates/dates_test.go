package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_FastPath(t *testing.T) {
	assert.Equal(t, "2025-08-01", Normalize("2025-08-01"))
	assert.Equal(t, "2025-08-01", Normalize("2025-08-01 08:15"))
	assert.Equal(t, "2025-08-01", Normalize("2025-08-01T23:59:59+02:00"))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("2025-12-31")
	assert.Equal(t, once, Normalize(once))
	assert.Equal(t, "2025-12-31", once)
}

func TestNormalize_GeneralLayouts(t *testing.T) {
	assert.Equal(t, "2025-08-01", Normalize("01/08/2025"))
	assert.Equal(t, "2025-08-01", Normalize("01/08/2025 08:15"))
	assert.Equal(t, "2025-08-01", Normalize("1 Aug 2025"))
	assert.Equal(t, "2025-08-01", Normalize("Aug 1, 2025"))
}

func TestNormalize_FailureIsEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("not a date"))
	assert.Equal(t, "", Normalize("31/31/2025"))
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "2025-08-01", Normalize("  2025-08-01 08:15  "))
}
