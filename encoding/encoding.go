// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. The scanner works on bytes and only
// treats ASCII specially, so input in a legacy charset is converted
// to UTF-8 with Decode before it is parsed.
package encoding

import (
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

type Encoding = enc.Encoding

var ErrUnknownEncoding = errors.New("unknown encoding")

func Load(name string) Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euc-kr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "hz-gb2312":
		return simplifiedchinese.HZGB2312
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "koi8r", "koi8-r":
		return charmap.KOI8R
	case "koi8u", "koi8-u":
		return charmap.KOI8U
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	case "iso-8859-1", "latin1", "windows1252":
		return charmap.Windows1252
	}
	return nil
}

// Decode converts b from the named encoding to UTF-8. An empty name
// or UTF-8 returns b untouched.
func Decode(name string, b []byte) ([]byte, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return b, nil
	}

	e := Load(name)
	if e == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, `encoding %q`, name)
	}

	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode %s input`, name)
	}
	return out, nil
}
