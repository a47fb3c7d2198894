// File: utils/constants.go
package utils

import "time"

// GateKeyPrefix is the prefix used for admission gate counter keys.
const GateKeyPrefix = "gate:"

// BookingLockPrefix is the prefix used for per-provider booking lock keys.
const BookingLockPrefix = "booklock:"

// BookingLockTTL bounds how long a provider lock may be held if the
// holding process dies mid-commit.
const BookingLockTTL = 10 * time.Second
