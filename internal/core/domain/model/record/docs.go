// Package record provides ProcessedRecord, the append-only trace of a parcel
// leaving the depot, and Kind, the way it left.
//
// A parcel leaves either through the customer queue (Processed) or through a
// direct collection (Collected). Both are terminal: the parcel is removed from
// the store when its record is created.
package record
