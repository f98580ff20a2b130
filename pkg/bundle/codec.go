// Package bundle converts between the editor's binary project bundles
// and the text form the project-storage service keeps.
//
// A stored project travels as Base64 text wrapping an LZMA-compressed
// JSON document. The document comes in two shapes (see ParsePayload);
// both carry the project's file map, which must include the reserved
// project.json configuration entry before it can be installed.
package bundle

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// Encode returns the Base64 text form of a binary bundle. The editor's
// exporter uses the standard padded alphabet, so Encode must too.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode is the strict inverse of Encode.
func Decode(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Stage: StageBase64, Reason: "undecodable text", Err: err}
	}
	return raw, nil
}

// Decompress expands an LZMA-compressed bundle body into its JSON
// document.
func Decompress(raw []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &FormatError{Stage: StageLZMA, Reason: "bad stream header", Err: err}
	}
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, &FormatError{Stage: StageLZMA, Reason: "corrupt stream", Err: err}
	}
	return doc, nil
}

// Compress produces the LZMA body Decompress expects.
func Compress(doc []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(doc); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeAndDecompress converts stored bundle text back into its JSON
// document. This is the composition the importer runs on every cloud
// project.
func DecodeAndDecompress(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return Decompress(raw)
}

// CompressAndEncode is the export composition: JSON document in, stored
// bundle text out.
func CompressAndEncode(doc []byte) (string, error) {
	raw, err := Compress(doc)
	if err != nil {
		return "", err
	}
	return Encode(raw), nil
}
