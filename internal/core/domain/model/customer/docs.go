// Package customer provides the Customer aggregate of the tailor shop.
//
// Key business rules:
//   - A customer has a non-blank name of at most 255 characters
//   - Phone and address are optional; phone is unique among live customers
//     (enforced by the store)
//   - Customers are soft-deleted, and only when no order is still Pending or
//     Processing (see services.CustomerRemovalPolicy)
package customer
