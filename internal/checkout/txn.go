package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const transactionIDLength = 10

// generateTransactionID returns a fresh 10 digit numeric identifier for
// the payment gateway. Collisions are left to the gateway to reject.
func generateTransactionID() (string, error) {
	const digits = "0123456789"
	id := make([]byte, transactionIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate transaction id: %w", err)
		}
		id[i] = digits[n.Int64()]
	}
	return string(id), nil
}
