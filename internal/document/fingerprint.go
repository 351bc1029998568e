package document

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint hashes every field that reaches the page. Two quotations with
// the same fingerprint render to the same document.
func (q *Quotation) Fingerprint() (string, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("fingerprint quotation %d: %w", q.ID, err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
