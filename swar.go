package readtext

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// useWordScan gates the SWAR (SIMD-within-a-register) accelerated scan
// below. It mirrors the corpus's init-time feature-detection dispatch
// (useAVX512/shouldUseSIMD), but targets a portable word-at-a-time
// technique rather than an arch-specific vector ISA: cpu.X86.HasSSE2
// (effectively universal on amd64) just confirms we're on a platform
// where unaligned 64-bit loads are cheap, which is all this needs.
var useWordScan = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// swarScanThreshold is the minimum remaining-rune count before the
// word-scan path is worth its setup cost, the portable analogue of the
// corpus's simdMinThreshold.
const swarScanThreshold = 8

const broadcastLow = 0x0101010101010101
const broadcastHigh = 0x8080808080808080

// hasZeroByte is the classic SWAR "does any byte lane equal zero"
// trick: subtracting one from every lane borrows out of a zero lane
// and the high bit survives exactly when that lane started at zero (or
// wrapped from 0x80, which packRunesASCII's input range excludes).
func hasZeroByte(v uint64) uint64 {
	return (v - broadcastLow) &^ v & broadcastHigh
}

func broadcastByte(b byte) uint64 {
	return broadcastLow * uint64(b)
}

// packRunesASCII packs up to 8 runes from buf[pos:] into a uint64, one
// byte per lane, returning the number of runes actually packed (fewer
// than 8 at the tail, or when a non-ASCII rune is hit — such a rune
// can never equal an ASCII delimiter/comment/newline, so scanning
// stops there and the scalar loop takes over for it).
func packRunesASCII(buf []rune, pos int) (word uint64, n int) {
	limit := len(buf) - pos
	if limit > 8 {
		limit = 8
	}
	for n = 0; n < limit; n++ {
		r := buf[pos+n]
		if r >= 0x80 {
			break
		}
		word |= uint64(byte(r)) << (8 * n)
	}
	return word, n
}

// scanUnquotedRun looks for the first rune in buf[pos:] that is a
// newline, the configured delimiter, or (when hasComment) the comment
// marker, scanning eight runes at a time via SWAR byte-lane comparison
// instead of one rune at a time.
//
// It returns -1 only when it could make no progress at all (word-scan
// disabled, too little data left, or a non-ASCII delimiter/comment
// configured) — the caller must then fall back to a plain scalar scan
// itself. Any non-negative return is an offset relative to pos that is
// always safe to skip: either it lands exactly on the first matching
// rune, or (when an unpacked non-ASCII rune or the buffer tail was
// reached before any match) it lands one past the last rune already
// confirmed not to match, and the caller should call again from there.
func scanUnquotedRun(buf []rune, pos int, delim, comment rune, hasComment bool) int {
	if !useWordScan || len(buf)-pos < swarScanThreshold {
		return -1
	}
	if delim >= 0x80 || (hasComment && comment >= 0x80) {
		return -1
	}

	delimBC := broadcastByte(byte(delim))
	lfBC := broadcastByte('\n')
	crBC := broadcastByte('\r')
	var commentBC uint64
	if hasComment {
		commentBC = broadcastByte(byte(comment))
	}
	matchMask := func(word uint64) uint64 {
		hits := hasZeroByte(word^delimBC) | hasZeroByte(word^lfBC) | hasZeroByte(word^crBC)
		if hasComment {
			hits |= hasZeroByte(word ^ commentBC)
		}
		return hits
	}

	i := pos
	for i+8 <= len(buf) {
		word, n := packRunesASCII(buf, i)
		if n < 8 {
			if n > 0 {
				if hits := matchMask(word); hits != 0 {
					if lane := bits.TrailingZeros64(hits) / 8; lane < n {
						return i + lane - pos
					}
				}
			}
			if i+n == pos {
				return -1
			}
			return i + n - pos
		}
		if hits := matchMask(word); hits != 0 {
			lane := bits.TrailingZeros64(hits) / 8
			return i + lane - pos
		}
		i += 8
	}
	if i == pos {
		return -1
	}
	return i - pos
}
