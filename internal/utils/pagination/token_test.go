package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "5b1f7c9e-0000-4000-8000-000000000001"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token)

	gotTime, gotID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestEncodeCursorNormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 1, 1, 8, 0, 0, 0, loc)

	gotTime, _, err := DecodeCursor(EncodeCursor(local, "x"))

	assert.NoError(t, err)
	assert.True(t, local.Equal(gotTime))
	assert.Equal(t, time.UTC, gotTime.Location())
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2025-01-01T00:00:00Z"))
	_, _, err = DecodeCursor(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeCursor(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
