package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// EncodeSeqToken creates a base64 encoded cursor from a row sequence number.
// Listings ordered by insertion sequence use it as their page token.
func EncodeSeqToken(seq int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(seq, 10)))
}

// DecodeSeqToken parses the base64 encoded cursor back into a sequence number.
func DecodeSeqToken(token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	seq, err := strconv.ParseInt(string(decodedBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (sequence parse): %w", err)
	}
	return seq, nil
}
