package image

import (
	"errors"

	"github.com/bfmach/bfm/translate"
)

var f = translate.From

var (
	// Composer errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrDataSyntax       = errors.New(f(".data syntax"))
	ErrDataDuplicate    = errors.New(f(".data duplicated"))
	ErrDataMissing      = errors.New(f("data directive before .data"))
	ErrTextAfterData    = errors.New(f("program text after .data"))
	ErrByteSyntax       = errors.New(f(".byte syntax"))
	ErrFillSyntax       = errors.New(f(".fill syntax"))
	ErrByteRange        = errors.New(f("byte value out of range"))
	ErrImageOverflow    = errors.New(f("image exceeds memory size"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
