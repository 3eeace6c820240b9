// Package services contains domain services: stateless business rules that do
// not belong to a single entity. FeeCalculator prices the release of a parcel.
package services
