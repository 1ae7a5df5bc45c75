package contract

import (
	"strconv"
	"strings"

	"facthunt/sdk"
)

// Entry point payloads are pipe-delimited fields. A payloadReader pulls them
// out one by one and reverts with invalid_payload on any malformed field.

type payloadReader struct {
	fields []string
	pos    int
}

func newPayloadReader(payload *string) *payloadReader {
	if payload == nil {
		fail("missing payload", ErrInvalidPayload)
	}
	return &payloadReader{fields: strings.Split(*payload, "|")}
}

// next returns the next raw field or reverts if the payload is too short.
func (p *payloadReader) next(name string) string {
	if p.pos >= len(p.fields) {
		fail("missing field: "+name, ErrInvalidPayload)
	}
	f := p.fields[p.pos]
	p.pos++
	return f
}

// nextOptional returns the next raw field, or "" when the payload ends early.
func (p *payloadReader) nextOptional() string {
	if p.pos >= len(p.fields) {
		return ""
	}
	f := p.fields[p.pos]
	p.pos++
	return f
}

func (p *payloadReader) nextUint(name string) uint64 {
	v, err := strconv.ParseUint(p.next(name), 10, 64)
	if err != nil {
		fail("invalid unsigned integer field: "+name, ErrInvalidPayload)
	}
	return v
}

func (p *payloadReader) nextInt(name string) int64 {
	v, err := strconv.ParseInt(p.next(name), 10, 64)
	if err != nil {
		fail("invalid integer field: "+name, ErrInvalidPayload)
	}
	return v
}

func (p *payloadReader) nextAmount(name string) Amount {
	v, err := strconv.ParseFloat(p.next(name), 64)
	if err != nil || v < 0 {
		fail("invalid amount field: "+name, ErrInvalidPayload)
	}
	return FloatToAmount(v)
}

func (p *payloadReader) nextBool(name string) bool {
	switch p.next(name) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	fail("invalid boolean field: "+name, ErrInvalidPayload)
	return false
}

func (p *payloadReader) nextAddress(name string) sdk.Address {
	a := sdk.Address(strings.TrimSpace(p.next(name)))
	if !a.IsValid() {
		fail("invalid address field: "+name, ErrInvalidAddress)
	}
	return a
}

// nextAnswerID parses an answer slot index; the sentinel is never accepted
// from the outside.
func (p *payloadReader) nextAnswerID(name string) uint8 {
	v, err := strconv.ParseUint(p.next(name), 10, 8)
	if err != nil || uint8(v) == NoAnswer {
		fail("invalid answer id field: "+name, ErrInvalidPayload)
	}
	return uint8(v)
}
