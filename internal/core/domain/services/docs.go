// Package services provides domain services for rules that span more than
// one aggregate of the tailor shop.
//
// The package includes:
//   - CustomerRemovalPolicy: decides whether a customer may be deleted given
//     the state of their orders
package services
