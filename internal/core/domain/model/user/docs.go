// Package user contains the User aggregate backing authentication and the
// Manager role gate. Password hashing itself happens in the identity
// service; the aggregate only ever sees the resulting hash.
package user
