package http

import "github.com/indigo-web/utils/uf"

// BodyKind tags the payload stored in a Body.
type BodyKind uint8

const (
	// BodyAbsent marks that no payload is carried at all. Distinct from an
	// empty text payload.
	BodyAbsent BodyKind = iota
	// BodyText is a raw UTF-8 payload.
	BodyText
	// BodyGzip is an already gzip-compressed payload. Serialization emits it
	// as-is, no further transformation happens.
	BodyGzip
)

// Body is a tagged union of the payload representations a message can carry.
type Body struct {
	kind BodyKind
	data []byte
}

func NoBody() Body {
	return Body{}
}

func TextBody(text string) Body {
	return Body{kind: BodyText, data: []byte(text)}
}

func BytesBody(b []byte) Body {
	return Body{kind: BodyText, data: b}
}

func GzipBody(b []byte) Body {
	return Body{kind: BodyGzip, data: b}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

func (b Body) IsPresent() bool {
	return b.kind != BodyAbsent
}

// Bytes returns the raw byte representation of whichever variant the tag
// holds. Nil for an absent body.
func (b Body) Bytes() []byte {
	return b.data
}

func (b Body) Len() int {
	return len(b.data)
}

// String interprets the payload as text without copying it. The returned
// string shares memory with the body and must not outlive it.
func (b Body) String() string {
	return uf.B2S(b.data)
}
