// Package acw implements the acw_sc__v2 anti-bot cookie scheme. The
// interstitial page embeds a hex challenge string (arg1); the expected cookie
// value is obtained by scattering the challenge characters through a position
// table and XORing the result hex-pair-wise against a fixed mask.
//
// The site rotates the table and the mask from time to time, so both are
// configurable; the defaults below are the values the challenge script has
// shipped with so far.
package acw

import (
	"fmt"
	"strconv"
	"strings"
)

// Default scramble constants as served by the challenge script.
var (
	DefaultPositions = []int{
		15, 35, 29, 24, 33, 16, 1, 38, 10, 9,
		19, 31, 40, 27, 22, 37, 39, 6, 36, 28,
		23, 3, 34, 11, 13, 2, 17, 14, 4, 20,
		26, 21, 12, 5, 41, 18, 25, 7, 8, 32,
	}
	DefaultMask = "3000176000856006061501533003690027800375"
)

// Decoder turns arg1 challenge strings into acw_sc__v2 cookie values.
type Decoder struct {
	positions []int
	mask      string
	// Minimum challenge length implied by the position table.
	minInput int
}

// NewDecoder creates a decoder from a position table and a hex XOR mask. The
// mask must be lowercase hex of even length, one character per table entry.
func NewDecoder(positions []int, mask string) (*Decoder, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("empty position table")
	}
	if len(mask) != len(positions) {
		return nil, fmt.Errorf("mask length %d does not match position table length %d",
			len(mask), len(positions))
	}
	if len(mask)%2 != 0 {
		return nil, fmt.Errorf("mask length %d is not even", len(mask))
	}
	if !isHex(mask) {
		return nil, fmt.Errorf("mask is not a hex string")
	}

	minInput := 0
	for _, pos := range positions {
		if pos < 1 {
			return nil, fmt.Errorf("invalid position %d in table", pos)
		}
		if pos > minInput {
			minInput = pos
		}
	}

	return &Decoder{positions: positions, mask: mask, minInput: minInput}, nil
}

// Decode computes the cookie value for one challenge string. Challenges come
// straight off a scraped page, so anything about them can be wrong; all
// failure modes are reported as errors and none of them are fatal to the
// caller's run.
func (d *Decoder) Decode(arg1 string) (string, error) {
	if len(arg1) < d.minInput {
		return "", fmt.Errorf("challenge too short: %d chars, position table needs %d",
			len(arg1), d.minInput)
	}
	if !isHex(arg1) {
		return "", fmt.Errorf("challenge is not a hex string")
	}

	// Scatter: output position i receives challenge character positions[i]-1.
	unscrambled := make([]byte, len(d.positions))
	for i, pos := range d.positions {
		unscrambled[i] = arg1[pos-1]
	}

	return hexXor(string(unscrambled), d.mask)
}

// hexXor XORs two equal-length hex strings pairwise, two hex digits at a
// time, as the challenge script does.
func hexXor(a, b string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i+2 <= len(a); i += 2 {
		x, err := strconv.ParseUint(a[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid hex pair %q: %v", a[i:i+2], err)
		}
		y, err := strconv.ParseUint(b[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid hex pair %q: %v", b[i:i+2], err)
		}
		fmt.Fprintf(&sb, "%02x", x^y)
	}
	return sb.String(), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
