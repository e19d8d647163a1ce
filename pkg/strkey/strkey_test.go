package strkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Well-known Stellar account IDs used across SDK documentation.
const (
	validAccountID  = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
	validAccountID2 = "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"
	// A secret seed is the same length and alphabet but carries a
	// different version byte ('S' prefix).
	secretSeed = "SDJHRQF4GCMIIKAAAQ6IHY42X73FQFLHUULAPSKKD4DFDM7UXWWCRHBE"
)

func TestIsValidEd25519PublicKey_Valid(t *testing.T) {
	assert.True(t, IsValidEd25519PublicKey(validAccountID))
	assert.True(t, IsValidEd25519PublicKey(validAccountID2))
}

func TestIsValidEd25519PublicKey_Invalid(t *testing.T) {
	// Flip one character in the key body so the checksum no longer matches.
	corrupted := validAccountID[:10] + "A" + validAccountID[11:]

	tests := []struct {
		name      string
		candidate string
	}{
		{"empty", ""},
		{"too short", "GA7QYNF7"},
		{"too long", validAccountID + "A"},
		{"corrupted checksum", corrupted},
		{"wrong version byte", secretSeed},
		{"lowercase", strings.ToLower(validAccountID)},
		{"invalid base32 chars", strings.Repeat("0", 56)},
		{"whitespace padded", " " + validAccountID[:55]},
		{"not a key at all", "not-a-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsValidEd25519PublicKey(tt.candidate))
		})
	}
}

func TestCRC16_KnownVector(t *testing.T) {
	// CRC16-XMODEM of "123456789" is 0x31C3.
	assert.Equal(t, uint16(0x31C3), crc16([]byte("123456789")))
}
