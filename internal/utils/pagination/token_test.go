package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	rowID := "0d3ed3f1-8f4a-4f8f-9a1a-0c2a8f4c9e11"

	token := EncodeToken(createdAt, rowID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedRowID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, rowID, decodedRowID, "Row ID should match after decode")

	// Current time round-trips through the nanosecond format
	now := time.Now().UTC()
	nowToken := EncodeToken(now, "txn-1")
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Invalid timestamp
	_, _, err = DecodeToken("bm90YWRhdGV8dHhuLTE=") // "notadate|txn-1"
	assert.Error(t, err, "Should return an error for invalid timestamp")
	assert.Contains(t, err.Error(), "created_at parse")
}
