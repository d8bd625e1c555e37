package server

import (
	"math/rand"
	"time"
)

// newRoomRand seeds an independent random source per room so role and
// theme draws in one room never contend with another room's.
func newRoomRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
