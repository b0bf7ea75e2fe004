// Package envelope serializes a document collection to its on-disk form
// and back.
//
// Two shapes exist, fixed by the store configuration:
//
//   - plain: an indented UTF-8 JSON array of document objects
//   - encrypted: a single string "saltHex:ivHex:tagHex:ciphertextHex",
//     where the ciphertext decrypts to the JSON array under a key derived
//     from the salt and the active password
//
// Every encrypted Encode draws a fresh salt and IV, so writing identical
// data twice never produces identical bytes.
package envelope
