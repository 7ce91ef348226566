package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateBillNumber builds a human-readable bill identifier from the low
// six digits of the epoch-millisecond clock plus a three-digit random
// suffix. Numbers wrap every ~11.5 days, so they are time-sortable only
// within that window, and uniqueness is probabilistic: the unique index
// on the bills collection is the actual duplicate guard.
func GenerateBillNumber() string {
	timestamp := time.Now().UnixMilli() % 1000000
	random, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// clock fallback if the entropy source is unavailable
		random = big.NewInt(time.Now().UnixNano() % 1000)
	}
	return fmt.Sprintf("BILL-%06d-%03d", timestamp, random.Int64())
}
