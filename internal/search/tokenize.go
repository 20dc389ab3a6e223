// Package search builds the encrypted note index and answers keyword queries
// against it.
package search

import (
	"strings"
	"unicode"
)

const (
	// minIndexTermLen: index terms must be longer than this.
	minIndexTermLen = 2
	// minQueryTermLen: query terms must be longer than this. Intentionally
	// looser than minIndexTermLen.
	minQueryTermLen = 1
)

// stopWords covers English and Indonesian function words.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		the and for are but not you all any can had her was one our out day get has him his how man new now old see
		two way who boy did its let put say she too use that with have this will your from they know want been good
		much some time very when come here just like long make many over such take than them well were what where
		which while would there their about after again also into only other then these those could should being
		does doing each few more most own same both very is am an as at be by do if in it me my no of on or so to up
		we us he i a
		yang dan di ke dari ini itu dengan untuk pada adalah dalam tidak akan juga atau ada oleh sudah saya kami kita
		mereka dia ia anda karena agar bisa dapat lebih telah harus seperti saat jika maka namun tetapi bahwa sebagai
		hanya masih sangat semua setiap tersebut antara para bagi hal pun lagi sedang belum kalau kan nya tak
		apa siapa mana bila lalu per
	`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w is ignored by indexing and querying.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// normalize lower-cases s and turns every non-word rune into a space.
func normalize(s string) []string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Fields(s)
}

func filter(tokens []string, minLen int) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if len([]rune(tok)) <= minLen || IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Tokenize splits document text into index terms.
func Tokenize(text string) []string {
	return filter(normalize(text), minIndexTermLen)
}

// TokenizeQuery splits a query into search terms.
func TokenizeQuery(query string) []string {
	return filter(normalize(query), minQueryTermLen)
}
