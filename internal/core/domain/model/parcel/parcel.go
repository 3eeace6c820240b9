package parcel

import (
	"errors"
	"fmt"
	"strconv"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through NewParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is a parcel waiting in the depot.
//
// Example:
//
//	id, _ := kernel.NewParcelID("c200")
//	p, err := parcel.NewParcel(id, 2, 3, 4, 5, 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.DisplayString()) // Parcel{ID='C200', LxWxH=2x3x4, weight=5, days=10}
type Parcel struct {
	id          kernel.ParcelID
	length      float64
	width       float64
	height      float64
	weight      float64
	daysInDepot int
	collected   bool

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel with the collected flag cleared.
// Only the identifier is validated.
func NewParcel(id kernel.ParcelID, length, width, height, weight float64, daysInDepot int) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:          id,
		length:      length,
		width:       width,
		height:      height,
		weight:      weight,
		daysInDepot: daysInDepot,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the parcel was created through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel's identifier.
func (p *Parcel) ID() kernel.ParcelID {
	return p.id
}

// Length returns the parcel's length.
func (p *Parcel) Length() float64 {
	return p.length
}

// Width returns the parcel's width.
func (p *Parcel) Width() float64 {
	return p.width
}

// Height returns the parcel's height.
func (p *Parcel) Height() float64 {
	return p.height
}

// Weight returns the parcel's weight.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// DaysInDepot returns how many days the parcel has been held.
func (p *Parcel) DaysInDepot() int {
	return p.daysInDepot
}

// Collected is informational only; no depot operation sets it.
func (p *Parcel) Collected() bool {
	return p.collected
}

// String returns the full form used in the event log, including the collected flag.
func (p *Parcel) String() string {
	return fmt.Sprintf("Parcel{ID='%s', dim=%sx%sx%s, weight=%s, daysInDepot=%d, collected=%t}",
		p.id, num(p.length), num(p.width), num(p.height), num(p.weight), p.daysInDepot, p.collected)
}

// DisplayString returns the listing form, which omits the collected flag.
func (p *Parcel) DisplayString() string {
	return fmt.Sprintf("Parcel{ID='%s', LxWxH=%sx%sx%s, weight=%s, days=%d}",
		p.id, num(p.length), num(p.width), num(p.height), num(p.weight), p.daysInDepot)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
