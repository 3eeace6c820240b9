// Package customer provides the Customer entity: a person waiting in the depot
// queue together with the parcel they came to collect.
//
// Key business rules:
//   - Sequence numbers start at 1 and reflect queue insertion order
//   - The customer name must not be blank
//   - The desired parcel identifier is normalized by kernel.ParcelID
package customer
