// Package fingerprint packs perceptual hash bits into 64-bit words.
//
// A Builder accepts exactly the number of bits it was created for and then
// freezes into a Hash. Bits fill each word from the least significant end, so
// after 64 appends the first bit of a word sits in its most significant
// position. Two hashes are only comparable when they were built with the same
// bit order, which is why this package does not delegate to a generic bitset.
//
// Primary entry points:
//   - NewBuilder: allocates a buffer for a fixed number of bits
//   - Builder.Append / Builder.Finalize: fill and freeze the buffer
//   - Hash.String: hexadecimal rendering with ceil(size/4) digits
//
// This package has no avghash-specific dependencies.
package fingerprint
