package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xy-planning-network/jobtracker"
)

// A Parser decodes and validates payloads.
type Parser struct {
	validator
}

// NewParser constructs a *Parser.
func NewParser() *Parser {
	return &Parser{validator: newValidator()}
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire body and can't be read from again.
// Use a [io.TeeReader] if body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("%w: ParseBody called with non-pointer: %s", jobtracker.ErrUnexpected, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed decoding body: %s", jobtracker.ErrBadFormat, err)
	}

	return p.Validate(structPtr)
}

// Validate checks the fields on structPtr match the rules set by "validate" struct tags,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) Validate(structPtr any) error {
	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}

var std = NewParser()

// Validate checks structPtr with a package level *Parser.
func Validate(structPtr any) error { return std.Validate(structPtr) }
