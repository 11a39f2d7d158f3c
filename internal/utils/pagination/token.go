package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetPrefix = "offset"

// EncodeOffsetToken creates a base64 encoded token pointing at a row offset.
// rowCount pins the token to the batch it was issued for.
func EncodeOffsetToken(offset, rowCount int) string {
	return EncodeMultiFieldToken(offsetPrefix, strconv.Itoa(offset), strconv.Itoa(rowCount))
}

// DecodeOffsetToken parses a token created by EncodeOffsetToken for a batch of rowCount rows.
func DecodeOffsetToken(token string, rowCount int) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 3 || parts[0] != offsetPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset %q)", parts[1])
	}
	issuedFor, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (row count %q)", parts[2])
	}
	if issuedFor != rowCount {
		return 0, fmt.Errorf("pagination token was issued for %d rows, batch has %d", issuedFor, rowCount)
	}
	if offset > rowCount {
		return 0, fmt.Errorf("pagination token offset %d is past the last row", offset)
	}
	return offset, nil
}

// Window returns the [start, end) bounds of the page starting at offset,
// and whether rows remain after it. A limit of zero or less means no limit.
func Window(offset, limit, total int) (start, end int, more bool) {
	start = min(max(offset, 0), total)
	if limit <= 0 {
		return start, total, false
	}
	end = min(start+limit, total)
	return start, end, end < total
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
