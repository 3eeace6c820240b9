// Package kernel provides the domain primitives shared by the depot model.
//
// The package includes:
//   - ParcelID: the normalized (upper-cased) parcel identifier with its advisory
//     format check and discount rule
//   - UUID: a value object for generated identifiers of processed records and
//     report entries
//
// Both are immutable values that are safe to copy and compare.
package kernel
