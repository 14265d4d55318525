// Package auth handles client registration, PBKDF2 password
// verification, and the in-memory session token table.
package auth
