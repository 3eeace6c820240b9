// Package parcel provides the Parcel entity: the physical and billing attributes
// of an item held in the depot.
//
// Key business rules:
//   - A parcel is identified by a normalized kernel.ParcelID that never changes
//   - Dimensions, weight and days in depot are stored as given; they are not
//     range checked here (fee inputs are the caller's responsibility)
//   - The collected flag is kept for data-shape compatibility and starts false
package parcel
