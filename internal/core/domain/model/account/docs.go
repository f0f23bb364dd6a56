// Package account provides identities for the four actor roles of the
// system: customers, restaurant owners, couriers, and admins.
//
// The package includes:
//   - User: the persisted account entity with credential hash
//   - Role: a closed enum of actor roles with canonical wire names
//   - Actor: the resolved (id, role) pair attached to every engine call
//
// The order lifecycle engine consumes Actor values only; it never parses
// credentials or touches password hashes.
package account
