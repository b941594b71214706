// Package order provides the Order aggregate of the tailor shop and its
// lifecycle status.
//
// The package includes:
//   - Order: The aggregate root holding the garment, its dates and status
//   - Status: The closed set of lifecycle states with display metadata
//   - ValidateDeadline: The deadline-after-order-date rule
//
// Key business rules:
//   - An order belongs to exactly one customer
//   - The deadline must be strictly after the order date, on create and on
//     every change to either date
//   - New orders start as Pending unless a status is given
//   - Status is a free-standing field: any status may follow any other,
//     including itself. There is no transition graph.
package order
