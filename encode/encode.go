package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/objson/go-objson/ir"
	"github.com/objson/go-objson/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	escaped bool

	colorType ir.Type
	colorAttr ColorAttr
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders node as canonical compact text. String contents are
// emitted verbatim between quotes unless EncodeEscaped is set; see the
// package doc for the resulting round-trip caveat. Object fields appear
// in insertion order, arrays in element order, numbers in Go's shortest
// float form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		return fmt.Errorf("%w: %s", ErrEncoding, node.Type)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	for i, yField := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = ir.StringType
	v := quoteString(node.String, es)
	v = applyValueColor(es, ir.StringType, v)
	return writeString(w, v)
}

// quoteString wraps v in double quotes. Contents pass through verbatim
// unless escaping was requested.
func quoteString(v string, es *EncState) string {
	if es.escaped {
		return token.Quote(v)
	}
	return `"` + v + `"`
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatFloat(node.Float64, 'g', -1, 64)
	v = applyValueColor(es, ir.NumberType, v)
	return writeString(w, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	v = applyValueColor(es, ir.BoolType, v)
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := applyValueColor(es, ir.NullType, "null")
	return writeString(w, v)
}

func writeField(w io.Writer, f string, es *EncState) error {
	quoted := `"` + f + `"`
	if es.escaped {
		quoted = token.Quote(f)
	}
	sep := ":"
	if es.Color != nil {
		quoted = applyColor(es, ir.ObjectType, FieldColor, quoted)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	return writeString(w, quoted+sep)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}
