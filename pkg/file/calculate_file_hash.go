package file

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// CalculateHash okunan verinin sha256 özetini döner
func CalculateHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash hesaplanamadı: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
