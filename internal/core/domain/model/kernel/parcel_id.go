package kernel

import (
	"regexp"
	"strings"

	"depot/internal/pkg/errs"
)

// ErrParcelIDIsNotConstructed is returned when validating a zero-value ParcelID.
var ErrParcelIDIsNotConstructed = errs.NewValueIsRequiredError("ParcelID must be created via NewParcelID")

var wellFormedParcelID = regexp.MustCompile(`^[XC]\d+$`)

// ParcelID identifies a parcel in the depot. The value is always trimmed and
// upper-cased, which makes identifier comparisons case-insensitive for every
// caller that goes through NewParcelID.
//
// Example:
//
//	id, err := kernel.NewParcelID(" c200 ")
//	fmt.Println(id)                // C200
//	fmt.Println(id.IsDiscounted()) // true
type ParcelID struct {
	value string
}

// NewParcelID normalizes raw and returns it as a ParcelID.
// An identifier that is empty after trimming is rejected; an identifier that does
// not match the depot format is accepted (see IsWellFormed).
func NewParcelID(raw string) (ParcelID, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return ParcelID{}, errs.NewValueIsRequiredError("parcel ID")
	}
	return ParcelID{value: value}, nil
}

// MustNewParcelID is NewParcelID for literals known to be non-empty.
func MustNewParcelID(raw string) ParcelID {
	id, err := NewParcelID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the normalized identifier.
func (id ParcelID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers are the same.
func (id ParcelID) IsEqual(other ParcelID) bool {
	return id.value == other.value
}

// IsWellFormed reports whether the identifier has the depot format: X or C
// followed by one or more digits. The check is advisory; stores accept any
// non-empty identifier.
func (id ParcelID) IsWellFormed() bool {
	return wellFormedParcelID.MatchString(id.value)
}

// IsDiscounted reports whether the identifier qualifies for the C-prefix discount.
func (id ParcelID) IsDiscounted() bool {
	return strings.HasPrefix(id.value, "C")
}

// Validate ensures the identifier was created through NewParcelID.
func (id ParcelID) Validate() error {
	if id.value == "" {
		return ErrParcelIDIsNotConstructed
	}
	return nil
}
