package core

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// PublicKeySize is the length in bytes of an admin public key
const PublicKeySize = 32

// SS58 network prefix used by generic substrate addresses ("5..." addresses)
const DefaultSS58Prefix uint16 = 42

const ss58ChecksumSize = 2

var (
	canonicalHexPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	ss58ShapePattern    = regexp.MustCompile(`^5[1-9A-HJ-NP-Za-km-z]{46,48}$`)
	ss58ChecksumPrefix  = []byte("SS58PRE")
)

// NormalizeAddress converts a hex or SS58 address into the canonical
// lowercase 0x-prefixed 64 hex digit form
func NormalizeAddress(raw string) (string, error) {
	input := strings.TrimSpace(raw)
	if canonicalHexPattern.MatchString(input) {
		return strings.ToLower(input), nil
	}

	pub, _, err := DecodeSS58(input)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(pub), nil
}

// IsValidAddress is a cheap shape check for UI feedback. It does not verify
// SS58 checksums and must not be used as a security check.
func IsValidAddress(raw string) bool {
	address := strings.TrimSpace(raw)
	if address == "" {
		return false
	}
	if strings.HasPrefix(address, "0x") {
		return canonicalHexPattern.MatchString(address)
	}
	return ss58ShapePattern.MatchString(address)
}

// PublicKeyBytes decodes a canonical address into its 32 key bytes
func PublicKeyBytes(canonical string) ([]byte, error) {
	if !canonicalHexPattern.MatchString(canonical) {
		return nil, ErrInvalidAddressFormat
	}
	return hexutil.Decode(canonical)
}

// DecodeSS58 decodes an SS58 address and returns the public key and network prefix
func DecodeSS58(address string) ([]byte, uint16, error) {
	data, err := base58.Decode(address)
	if err != nil || len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: not base58", ErrInvalidAddressFormat)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		if len(data) < 2 {
			return nil, 0, fmt.Errorf("%w: truncated prefix", ErrInvalidAddressFormat)
		}
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, fmt.Errorf("%w: reserved prefix", ErrInvalidAddressFormat)
	}

	if len(data) != prefixLen+PublicKeySize+ss58ChecksumSize {
		return nil, 0, fmt.Errorf("%w: unexpected length %d", ErrInvalidAddressFormat, len(data))
	}

	body := data[:prefixLen+PublicKeySize]
	checksum := data[prefixLen+PublicKeySize:]
	if !bytes.Equal(ss58Checksum(body), checksum) {
		return nil, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddressFormat)
	}

	pub := make([]byte, PublicKeySize)
	copy(pub, data[prefixLen:])
	return pub, prefix, nil
}

// EncodeSS58 encodes a 32-byte public key as an SS58 address for prefix
func EncodeSS58(pub []byte, prefix uint16) (string, error) {
	if len(pub) != PublicKeySize {
		return "", fmt.Errorf("%w: public key must be %d bytes", ErrInvalidAddressFormat, PublicKeySize)
	}
	if prefix > 16383 {
		return "", fmt.Errorf("%w: prefix %d out of range", ErrInvalidAddressFormat, prefix)
	}

	var body []byte
	if prefix < 64 {
		body = append(body, byte(prefix))
	} else {
		first := byte((prefix&0xfc)>>2) | 0x40
		second := byte(prefix>>8) | byte((prefix&0x03)<<6)
		body = append(body, first, second)
	}
	body = append(body, pub...)
	body = append(body, ss58Checksum(body)...)
	return base58.Encode(body), nil
}

func ss58Checksum(body []byte) []byte {
	h := blake2b.Sum512(append(append([]byte{}, ss58ChecksumPrefix...), body...))
	return h[:ss58ChecksumSize]
}
