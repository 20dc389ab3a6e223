package model

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// DocumentID is an unsigned 128-bit document identifier stored big-endian.
type DocumentID [16]byte

// IndexDocumentID is reserved for the search index key and never used for notes.
var IndexDocumentID = DocumentID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

var maxDocumentID = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// NewDocumentID returns an id drawn from 128 random bits. It is never IndexDocumentID.
func NewDocumentID() DocumentID {
	var id DocumentID
	// Read never returns an error since Go 1.24.
	_, _ = rand.Read(id[:])
	if id == IndexDocumentID {
		id[15] = 0
	}
	return id
}

// DocumentIDFromUint64 builds an id whose value fits in 64 bits.
func DocumentIDFromUint64(v uint64) DocumentID {
	var id DocumentID
	binary.BigEndian.PutUint64(id[8:], v)
	return id
}

// ParseDocumentID parses the decimal text form of an id.
func ParseDocumentID(s string) (DocumentID, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return DocumentID{}, fmt.Errorf("%w: document id %q is not a decimal number", ErrInvalidArgument, s)
	}
	if n.Sign() < 0 || n.Cmp(maxDocumentID) > 0 {
		return DocumentID{}, fmt.Errorf("%w: document id %q is out of range", ErrInvalidArgument, s)
	}

	var id DocumentID
	n.FillBytes(id[:])
	return id, nil
}

// DocumentIDFromBytes decodes the 16-byte big-endian form.
func DocumentIDFromBytes(b []byte) (DocumentID, error) {
	var id DocumentID
	if len(b) != len(id) {
		return DocumentID{}, fmt.Errorf("%w: document id must be %d bytes, got %d", ErrInvalidArgument, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// Bytes returns the 16-byte big-endian encoding used as cryptographic binding input.
func (id DocumentID) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// String returns the decimal text form.
func (id DocumentID) String() string {
	return new(big.Int).SetBytes(id[:]).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DocumentID) UnmarshalText(text []byte) error {
	parsed, err := ParseDocumentID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// CacheKey is the composite key under which a derived key is cached.
func CacheKey(id DocumentID, owner string) string {
	return id.String() + ":" + owner
}

// DerivationInput binds a key to a document: id as 16 bytes big-endian followed by the owner.
func DerivationInput(id DocumentID, owner string) []byte {
	input := make([]byte, 0, len(id)+len(owner))
	input = append(input, id[:]...)
	return append(input, owner...)
}
