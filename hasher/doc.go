// Package hasher computes the keyed checksum used to fingerprint billchain
// blocks.
//
// # Keyed Hash
//
// Every supported code point is mapped to a 16 bit weight taken from a frozen
// table. The checksum of a text is the sum of the weights of its code points,
// reduced modulo 65536 and rendered as lowercase hexadecimal without padding
// (one to four digits).
//
// The table covers the alphabet that appears in ledger lines and block
// fingerprints: decimal digits, lowercase ASCII letters, the SYSTEM token and
// the delimiters ( ) . > : |. Any other code point is rejected with an
// *UnsupportedRuneError.
//
// The checksum is not a cryptographic primitive. It only detects accidental or
// naive edits of a block.
package hasher
