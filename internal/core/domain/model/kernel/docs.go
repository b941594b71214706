// Package kernel provides core domain primitives shared by the tailor shop
// aggregates.
//
// The package includes:
//   - ID: A positive integer identifier assigned by the store
//   - Date: A calendar date without time of day, used for order dates and deadlines
//
// Both are immutable value objects with validation so that aggregates never
// hold a zero identifier or a zero date by accident.
package kernel
