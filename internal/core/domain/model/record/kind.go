package record

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Kind tells how a parcel left the depot.
//
//	Loaded ──┬──> Processed   (queue step)
//	         └──> Collected   (direct collection)
type Kind int

const (
	// Unknown catches uninitialized Kind values.
	Unknown Kind = iota

	// Processed means the parcel was released to the customer at the head of the queue.
	Processed

	// Collected means the parcel was collected directly, bypassing the queue.
	Collected
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:   "Unknown",
		Processed: "Processed",
		Collected: "Collected",
	}
}

// Validate rejects Unknown and out-of-range values.
func (k Kind) Validate() error {
	if k != Processed && k != Collected {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the kind name.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// action is the suffix the report uses for this kind.
func (k Kind) action() string {
	switch k {
	case Processed:
		return "Processed via Worker"
	case Collected:
		return "Collected via Customer"
	default:
		return "Unknown"
	}
}
