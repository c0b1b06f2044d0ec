package kernel

import (
	"fmt"
	"strconv"

	"mota/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating the zero ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the numeric identifier the backend assigns to orders and users.
// The zero value is invalid; identifiers are always positive.
//
//	orderID, err := kernel.NewID(128)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(orderID) // 128
type ID struct {
	value int64
}

// NewID wraps a backend identifier. Zero and negative values are rejected.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for constants and tests.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses the decimal form used in URLs.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// Int64 returns the raw identifier for wire encoding.
func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual reports whether both identifiers refer to the same record.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
