package dmx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leops/dmxparser/errs"
	"github.com/leops/dmxparser/source"
)

// The supported encoding profile. Files advertising any other encoding name or
// version are rejected outright. The format name and version are recorded but
// not constrained; real files carry dialect names like "vmap 29".
const (
	supportedEncoding        = "binary"
	supportedEncodingVersion = 9
)

// Header-line grammar tokens, matched literally and in order.
const (
	headerOpenToken   = "<!-- dmx encoding "
	headerFormatToken = "format "
	headerCloseToken  = "-->\n"
)

// Decode reads one complete document from src.
//
// Decoding is strictly sequential and all-or-nothing: on any failure no
// partial document is returned. When src is a SliceSource the document borrows
// from the input buffer; see the package documentation for the lifetime rules.
func Decode(src source.Source) (*Document, error) {
	header, err := readFileHeader(src)
	if err != nil {
		return nil, err
	}

	if header.EncodingName != supportedEncoding || header.EncodingVersion != supportedEncodingVersion {
		return nil, errs.Formatf("unsupported encoding %q version %d, want %q version %d",
			header.EncodingName, header.EncodingVersion, supportedEncoding, supportedEncodingVersion)
	}

	// Reserved field, always present, never interpreted.
	if _, err := source.Int32(src); err != nil {
		return nil, err
	}

	doc := &Document{Header: header}

	if doc.Prefix, err = readPrefix(src); err != nil {
		return nil, err
	}

	if doc.Strings, err = readStringTable(src); err != nil {
		return nil, err
	}

	count, err := readCount(src, "element")
	if err != nil {
		return nil, err
	}

	doc.Headers = make([]ElementHeader, 0, count)
	for i := 0; i < count; i++ {
		h, err := readElementHeader(src)
		if err != nil {
			return nil, fmt.Errorf("element %d header: %w", i, err)
		}

		doc.Headers = append(doc.Headers, h)
	}

	doc.Bodies = make([]ElementBody, 0, count)
	for i := 0; i < count; i++ {
		b, err := readElementBody(src, doc.Strings)
		if err != nil {
			return nil, fmt.Errorf("element %d body: %w", i, err)
		}

		doc.Bodies = append(doc.Bodies, b)
	}

	return doc, nil
}

// readFileHeader parses the leading NUL-terminated text line against the fixed
// grammar "<!-- dmx encoding {name} {ver} format {name} {ver} -->\n". Literal
// tokens must appear in exact order; fields are whatever sits between them.
func readFileHeader(src source.Source) (FileHeader, error) {
	line, err := src.ReadString()
	if err != nil {
		return FileHeader{}, err
	}

	rest, ok := strings.CutPrefix(line, headerOpenToken)
	if !ok {
		return FileHeader{}, errs.Formatf("malformed header line %q: missing %q", line, headerOpenToken)
	}

	encName, rest, err := headerField(line, rest)
	if err != nil {
		return FileHeader{}, err
	}

	encVersion, rest, err := headerVersion(line, rest)
	if err != nil {
		return FileHeader{}, err
	}

	rest, ok = strings.CutPrefix(rest, headerFormatToken)
	if !ok {
		return FileHeader{}, errs.Formatf("malformed header line %q: missing %q", line, headerFormatToken)
	}

	fmtName, rest, err := headerField(line, rest)
	if err != nil {
		return FileHeader{}, err
	}

	fmtVersion, rest, err := headerVersion(line, rest)
	if err != nil {
		return FileHeader{}, err
	}

	if rest != headerCloseToken {
		return FileHeader{}, errs.Formatf("malformed header line %q: missing %q", line, headerCloseToken)
	}

	return FileHeader{
		EncodingName:    encName,
		EncodingVersion: encVersion,
		FormatName:      fmtName,
		FormatVersion:   fmtVersion,
	}, nil
}

func headerField(line, rest string) (string, string, error) {
	field, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return "", "", errs.Formatf("malformed header line %q: missing separator after %q", line, field)
	}

	return field, rest, nil
}

func headerVersion(line, rest string) (int32, string, error) {
	field, rest, err := headerField(line, rest)
	if err != nil {
		return 0, "", err
	}

	v, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, "", errs.Formatf("malformed header line %q: version %q is not a number", line, field)
	}

	return int32(v), rest, nil
}

func readPrefix(src source.Source) ([]PrefixAttribute, error) {
	count, err := readCount(src, "prefix attribute")
	if err != nil {
		return nil, err
	}

	prefix := make([]PrefixAttribute, 0, count)
	for i := 0; i < count; i++ {
		name, err := src.ReadString()
		if err != nil {
			return nil, err
		}

		value, err := readValue(src, stringInline)
		if err != nil {
			return nil, &errs.AttributeError{Name: name, Err: err}
		}

		prefix = append(prefix, PrefixAttribute{Name: name, Value: value})
	}

	return prefix, nil
}

func readStringTable(src source.Source) ([]string, error) {
	count, err := readCount(src, "string table")
	if err != nil {
		return nil, err
	}

	table := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := src.ReadString()
		if err != nil {
			return nil, fmt.Errorf("string table entry %d: %w", i, err)
		}

		table = append(table, s)
	}

	return table, nil
}

func readElementHeader(src source.Source) (ElementHeader, error) {
	var h ElementHeader
	var err error

	typeRef, err := source.Int32(src)
	if err != nil {
		return h, err
	}
	h.Type = StringRef(typeRef)

	nameRef, err := source.Int32(src)
	if err != nil {
		return h, err
	}
	h.Name = StringRef(nameRef)

	err = src.ReadInto(h.GUID[:])

	return h, err
}

func readElementBody(src source.Source, table []string) (ElementBody, error) {
	count, err := readCount(src, "attribute")
	if err != nil {
		return ElementBody{}, err
	}

	attrs := make([]Attribute, 0, count)
	for i := 0; i < count; i++ {
		nameRef, err := source.Int32(src)
		if err != nil {
			return ElementBody{}, err
		}

		name := StringRef(nameRef)
		value, err := readValue(src, stringTableRef)
		if err != nil {
			return ElementBody{}, &errs.AttributeError{Name: attrErrorName(name, table), Err: err}
		}

		attrs = append(attrs, Attribute{Name: name, Value: value})
	}

	return ElementBody{Attributes: attrs}, nil
}

// attrErrorName resolves an attribute name for error reporting, falling back
// to the raw reference in debug form when the table cannot resolve it.
func attrErrorName(ref StringRef, table []string) string {
	if i, ok := ref.Index(); ok && i < len(table) {
		return strconv.Quote(table[i])
	}

	return fmt.Sprintf("#%d", ref)
}
