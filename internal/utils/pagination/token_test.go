package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	token := EncodeOffsetToken(50, 120)
	assert.NotEmpty(t, token, "Token should not be empty")

	offset, err := DecodeOffsetToken(token, 120)
	require.NoError(t, err)
	assert.Equal(t, 50, offset)

	// Zero offset round-trips too
	offset, err = DecodeOffsetToken(EncodeOffsetToken(0, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
}

func TestDecodeOffsetToken_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		rowCount int
	}{
		{"not base64", "not-base64!@#", 10},
		{"wrong prefix", EncodeMultiFieldToken("cursor", "1", "10"), 10},
		{"missing fields", EncodeMultiFieldToken("offset", "1"), 10},
		{"negative offset", EncodeMultiFieldToken("offset", "-1", "10"), 10},
		{"non numeric offset", EncodeMultiFieldToken("offset", "x", "10"), 10},
		{"other batch", EncodeOffsetToken(5, 11), 10},
		{"past the end", EncodeOffsetToken(11, 10), 10},
		{"plain text", base64.StdEncoding.EncodeToString([]byte("hello")), 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeOffsetToken(tc.token, tc.rowCount)
			assert.Error(t, err)
		})
	}
}

func TestWindow(t *testing.T) {
	testCases := []struct {
		name                 string
		offset, limit, total int
		start, end           int
		more                 bool
	}{
		{"no limit", 0, 0, 5, 0, 5, false},
		{"first page", 0, 2, 5, 0, 2, true},
		{"middle page", 2, 2, 5, 2, 4, true},
		{"last page", 4, 2, 5, 4, 5, false},
		{"exact fit", 3, 2, 5, 3, 5, false},
		{"offset at end", 5, 2, 5, 5, 5, false},
		{"empty batch", 0, 10, 0, 0, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, more := Window(tc.offset, tc.limit, tc.total)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
			assert.Equal(t, tc.more, more)
		})
	}
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields, err := DecodeMultiFieldToken(EncodeMultiFieldToken("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
