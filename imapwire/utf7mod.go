package imapwire

// Modified UTF-7 mailbox-name transcoding (RFC 3501 §5.1.3, itself a
// restriction of RFC 2152's UTF-7). A mailbox name travels on the wire as
// an AString in this encoding; utf7ModDecode (used by Mailbox.DecodedName)
// and utf7ModEncode translate to and from the name a user would actually
// type.
//
// The RFC states several MUST requirements for senders that this decoder
// relaxes for receivers, since there is no good recovery from a peer that
// already sent non-conformant UTF-7.

import (
	"bytes"
	"encoding/base64"
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

var errBadUTF7Mod = errors.New("imapwire: invalid modified UTF-7")

// modified BASE64: ordinary base64 with ',' in place of '/', no padding.
var utf7ModB64 = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,",
).WithPadding(base64.NoPadding)

func utf7ModDecode(src []byte) ([]byte, error) {
	var dst []byte
	for len(src) > 0 {
		c := src[0]
		src = src[1:]
		if c != '&' {
			dst = append(dst, c)
			continue
		}
		i := bytes.IndexByte(src, '-')
		if i == -1 {
			return nil, errBadUTF7Mod
		}
		if i == 0 {
			src = src[1:]
			dst = append(dst, '&')
			continue
		}

		decoded := make([]byte, utf7ModB64.DecodedLen(i))
		n, err := utf7ModB64.Decode(decoded, src[:i])
		src = src[i+1:]
		if err != nil {
			return nil, errBadUTF7Mod
		}
		decoded = decoded[:n]
		if len(decoded)%2 == 1 {
			return nil, errBadUTF7Mod
		}

		for len(decoded) > 0 {
			r := rune(decoded[0])<<8 | rune(decoded[1])
			decoded = decoded[2:]
			if utf16.IsSurrogate(r) {
				if len(decoded) < 2 {
					return nil, errBadUTF7Mod
				}
				r2 := rune(decoded[0])<<8 | rune(decoded[1])
				decoded = decoded[2:]
				combined := utf16.DecodeRune(r, r2)
				if combined == utf8.RuneError {
					return nil, errBadUTF7Mod
				}
				r = combined
			}
			var buf [4]byte
			dst = append(dst, buf[:utf8.EncodeRune(buf[:], r)]...)
		}
	}
	return dst, nil
}

func utf7ModEncode(src []byte) []byte {
	var dst []byte
	for len(src) > 0 {
		r, sz := utf8.DecodeRune(src)
		switch {
		case r == '&':
			dst = append(dst, '&', '-')
			src = src[1:]
		case r < utf8.RuneSelf:
			dst = append(dst, byte(r))
			src = src[1:]
		default:
			var units []byte
			for len(src) > 0 {
				r, sz := utf8.DecodeRune(src)
				if r < utf8.RuneSelf {
					break
				}
				src = src[sz:]
				if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
					units = append(units, byte(r1>>8), byte(r1))
					r = r2
				}
				units = append(units, byte(r>>8), byte(r))
			}
			encLen := utf7ModB64.EncodedLen(len(units))
			dst = append(dst, '&')
			dst = append(dst, make([]byte, encLen)...)
			utf7ModB64.Encode(dst[len(dst)-encLen:], units)
			dst = append(dst, '-')
			continue
		}
		_ = sz
	}
	return dst
}
