// Package strkey validates Stellar strkey-encoded account identifiers.
//
// A strkey account ID is a base-32 string encoding a version byte, a
// 32-byte ed25519 public key, and a 2-byte CRC16-XMODEM checksum over
// the preceding 33 bytes. Account IDs are always 56 characters and
// start with 'G'.
package strkey

import "encoding/base32"

// versionByteAccountID is the strkey version byte for ed25519 public
// keys (account IDs). 6 << 3 encodes to a leading 'G'.
const versionByteAccountID byte = 6 << 3

// encodedAccountIDLen is the fixed strkey length for account IDs:
// 35 raw bytes (1 version + 32 key + 2 checksum) at 5 bits per char.
const encodedAccountIDLen = 56

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsValidEd25519PublicKey reports whether candidate is a well-formed
// strkey account ID. It never panics; every malformed input (wrong
// length, invalid base-32, wrong version byte, bad checksum) yields
// false.
func IsValidEd25519PublicKey(candidate string) bool {
	if len(candidate) != encodedAccountIDLen {
		return false
	}

	raw, err := encoding.DecodeString(candidate)
	if err != nil {
		return false
	}
	if len(raw) != 35 {
		return false
	}
	if raw[0] != versionByteAccountID {
		return false
	}

	payload := raw[:33]
	want := uint16(raw[33]) | uint16(raw[34])<<8 // checksum is little-endian
	return crc16(payload) == want
}

// crc16 computes the CRC16-XMODEM checksum (polynomial 0x1021,
// initial value 0) used by the strkey format.
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
