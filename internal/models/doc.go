// Package models defines the records Proofy persists.
//
// # Records
//
//   - User: an account that submits works and owns their proofs
//   - Work: a registered file hash with its metadata and rights split
//
// A Work is immutable once created except for its anchoring fields, which
// are filled in when the hash has been anchored on a blockchain.
//
// # Design Principles
//
// 1. **Opaque rights**: the rights split is stored as a rights.Payload and is
// not interpreted by storage
// 2. **Avoid circular references**: relationships use ID strings
// 3. **Unix timestamps**: all times are seconds since the epoch
package models
