package image

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/bfmach/bfm/core"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Composer builds a memory image from a line-based source format:
// program text lines, then a .data directive emitting the separator,
// then .byte and .fill directives filling the working-cell region.
// Directive values may be numbers, equates, or compile-time $(...)
// expressions.
type Composer struct {
	Verbose bool // If set, verbosely logs the composer actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (comp *Composer) Predefine(equ string, value string) {
	if comp.predefine == nil {
		comp.predefine = map[string]string{equ: value}
	} else {
		comp.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (comp *Composer) valueOf(word string) (value uint32, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(word[1 : len(word)-1])
		return
	}
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 <= 0xffffffff && v64 >= -int64(0x80000000) {
		if v64 < 0 {
			value = uint32(0xffffffff + (v64 + 1))
		} else {
			value = uint32(v64)
		}
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (comp *Composer) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range comp.Equate {
		var value32 uint32
		value32, err = comp.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine expands a directive line into its words: character quotes,
// $(...) evaluations, .equ handling, and equate substitution.
func (comp *Composer) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	comp.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := comp.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := comp.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		comp.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words[1:] {
		equate, ok := comp.Equate[word]
		if ok {
			words[1+n] = equate
		}
	}

	return
}

// byteOf narrows a directive word to a cell value.
func (comp *Composer) byteOf(word string) (value uint8, err error) {
	v32, err := comp.valueOf(word)
	if err != nil {
		return
	}
	if v32 > 0xff {
		err = ErrByteRange
		return
	}

	value = uint8(v32)
	return
}

// Parse composes an input stream into a memory image. Program text is
// emitted verbatim (whitespace stripped); if no .data directive appears,
// the separator is appended after the program.
func (comp *Composer) Parse(input io.Reader) (img *Image, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	comp.Equate = maps.Clone(sysEquate)
	for attr, val := range comp.predefine {
		comp.Equate[attr] = val
	}

	img = &Image{}
	inData := false

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if comp.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		if len(line) == 0 {
			continue
		}

		// A directive is a dot followed by a letter; a lone '.' is the
		// output command and belongs to the program text.
		directive := len(line) >= 2 && line[0] == '.' && line[1] >= 'a' && line[1] <= 'z'

		if !directive {
			// Program text. Bytes outside the command set execute as
			// comments, so the text is emitted as written.
			if inData {
				err = ErrTextAfterData
				return
			}
			for _, ch := range []byte(line) {
				if ch == ' ' || ch == '\t' {
					continue
				}
				err = img.emit(ch)
				if err != nil {
					return
				}
			}
			continue
		}

		var words []string
		words, err = comp.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			// .equ consumed the line.
			continue
		}

		switch words[0] {
		case ".data":
			if len(words) != 1 {
				err = ErrDataSyntax
				return
			}
			if inData {
				err = ErrDataDuplicate
				return
			}
			err = img.emit(core.SEPARATOR)
			if err != nil {
				return
			}
			img.Base = len(img.Data)
			inData = true
		case ".byte":
			if !inData {
				err = ErrDataMissing
				return
			}
			if len(words) < 2 {
				err = ErrByteSyntax
				return
			}
			for _, word := range words[1:] {
				var value uint8
				value, err = comp.byteOf(word)
				if err != nil {
					return
				}
				err = img.emit(value)
				if err != nil {
					return
				}
			}
		case ".fill":
			if !inData {
				err = ErrDataMissing
				return
			}
			if len(words) != 3 {
				err = ErrFillSyntax
				return
			}
			var count uint32
			count, err = comp.valueOf(words[1])
			if err != nil {
				return
			}
			var value uint8
			value, err = comp.byteOf(words[2])
			if err != nil {
				return
			}
			for range count {
				err = img.emit(value)
				if err != nil {
					return
				}
			}
		default:
			err = ErrDirectiveInvalid
			return
		}
	}

	if !inData {
		err = img.emit(core.SEPARATOR)
		if err != nil {
			return
		}
		img.Base = len(img.Data)
	}

	return
}
