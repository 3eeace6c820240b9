package record

import (
	"errors"
	"fmt"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrProcessedRecordIsNotConstructed is returned when a ProcessedRecord was not created through NewProcessedRecord.
	ErrProcessedRecordIsNotConstructed = errors.New("ProcessedRecord must be created via NewProcessedRecord constructor")
)

// ProcessedRecord describes one completed processing or collection.
// Records are values and are never changed after creation.
type ProcessedRecord struct {
	id           kernel.UUID
	kind         Kind
	parcelID     kernel.ParcelID
	customerName string
	fee          float64

	guard guard.ConstructorGuard
}

// NewProcessedRecord creates a record with a fresh identifier.
//
// Example:
//
//	rec, _ := record.NewProcessedRecord(record.Processed, kernel.MustNewParcelID("X100"), "Alice", 12.5)
//	fmt.Println(rec.Text()) // Processed Parcel ID X100 for Alice | Fee: $12.50
func NewProcessedRecord(kind Kind, parcelID kernel.ParcelID, customerName string, fee float64) (ProcessedRecord, error) {
	var nameErr error
	if strings.TrimSpace(customerName) == "" {
		nameErr = errs.NewValueIsRequiredError("customer name")
	}

	if err := errors.Join(kind.Validate(), parcelID.Validate(), nameErr); err != nil {
		return ProcessedRecord{}, err
	}

	return ProcessedRecord{
		id:           kernel.NewUUID(),
		kind:         kind,
		parcelID:     parcelID,
		customerName: customerName,
		fee:          fee,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through NewProcessedRecord.
func (r ProcessedRecord) Validate() error {
	return r.guard.Validate(ErrProcessedRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r ProcessedRecord) ID() kernel.UUID {
	return r.id
}

// Kind returns how the parcel left the depot.
func (r ProcessedRecord) Kind() Kind {
	return r.kind
}

// ParcelID returns the released parcel.
func (r ProcessedRecord) ParcelID() kernel.ParcelID {
	return r.parcelID
}

// CustomerName returns who received the parcel.
func (r ProcessedRecord) CustomerName() string {
	return r.customerName
}

// Fee returns the fee charged on release.
func (r ProcessedRecord) Fee() float64 {
	return r.fee
}

// Text is the human-readable line kept in the processed list and the event log.
func (r ProcessedRecord) Text() string {
	if r.kind == Collected {
		return fmt.Sprintf("Collected Parcel ID %s by %s | Fee: $%.2f", r.parcelID, r.customerName, r.fee)
	}
	return fmt.Sprintf("Processed Parcel ID %s for %s | Fee: $%.2f", r.parcelID, r.customerName, r.fee)
}

// ReportText is Text followed by the action that produced the record.
func (r ProcessedRecord) ReportText() string {
	return fmt.Sprintf("%s (Action: %s)", r.Text(), r.kind.action())
}
