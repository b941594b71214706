// Package measurement provides the body Measurement entity recorded for a
// customer.
//
// A measurement holds four fixed fields (shoulder, chest, waist, sleeve) and
// any number of extra named values such as "hip" or "inseam". Every value is
// optional and, when present, a finite non-negative number. Measurements are
// removed physically; there is no soft delete.
package measurement
