package random

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dummygen/dummygen-go/internal/model"
)

const (
	// MaxNumber is the exclusive upper bound of number values and email suffixes.
	MaxNumber = 1000

	// fractionDigits is how many base-36 digits of a random fraction are rendered;
	// the leading skipDigits are dropped so tokens come from the low-order digits.
	fractionDigits = 11
	skipDigits     = 5

	// TokenLength is the length of a string value.
	TokenLength = fractionDigits - skipDigits
)

// fractionSpace is 36^fractionDigits.
var fractionSpace = pow36(fractionDigits)

// String returns a lowercase alphanumeric token taken from the base-36
// fractional digits of a random number.
func String() string {
	digits := strconv.FormatUint(rand.Uint64N(fractionSpace), 36)
	if len(digits) < fractionDigits {
		digits = strings.Repeat("0", fractionDigits-len(digits)) + digits
	}
	return digits[skipDigits:]
}

// Number returns an integer in [0, MaxNumber).
func Number() int {
	return rand.IntN(MaxNumber)
}

// Boolean returns true or false with equal probability.
func Boolean() bool {
	return rand.IntN(2) == 1
}

// UUID returns a version 4 UUID read from crypto/rand.
func UUID() string {
	return uuid.NewString()
}

// Email returns an address of the form user<n>@example.com.
func Email() string {
	return "user" + strconv.Itoa(Number()) + "@example.com"
}

// Value returns a random value for the given field type. Unknown types
// produce strings.
func Value(ft model.FieldType) any {
	switch ft {
	case model.FieldTypeNumber:
		return Number()
	case model.FieldTypeBoolean:
		return Boolean()
	case model.FieldTypeUUID:
		return UUID()
	case model.FieldTypeEmail:
		return Email()
	default:
		return String()
	}
}

func pow36(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 36
	}
	return v
}
