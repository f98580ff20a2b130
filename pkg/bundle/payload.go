package bundle

import (
	"encoding/json"
)

// PayloadKind identifies which of the known bundle shapes a decoded
// document carried.
type PayloadKind int

const (
	// KindUnknown is never returned by ParsePayload; unrecognized
	// documents fail instead of passing through half-classified.
	KindUnknown PayloadKind = iota

	// KindExport is the exporter's shape: {"source": "<JSON text of
	// the file map>", "meta": {...}}.
	KindExport

	// KindWorkspace is the workspace shape: {"text": {file map},
	// "header": {...}}.
	KindWorkspace
)

func (k PayloadKind) String() string {
	switch k {
	case KindExport:
		return "export"
	case KindWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

// Payload is a classified bundle document. Files is the project's file
// map regardless of shape; Meta is the export meta or workspace header
// object, whichever the document carried.
type Payload struct {
	Kind  PayloadKind
	Files map[string]string
	Meta  map[string]any
}

// envelope spans the union of both shapes so classification can look at
// which tags are present before committing to a variant.
type envelope struct {
	Source json.RawMessage `json:"source"`
	Meta   map[string]any  `json:"meta"`
	Text   json.RawMessage `json:"text"`
	Header map[string]any  `json:"header"`
}

// ParsePayload classifies a decompressed bundle document into one of
// the known shapes. A document carrying both tags is treated as an
// export bundle; the exporter never writes text alongside source.
// Anything else fails with a FormatError rather than guessing.
func ParsePayload(doc []byte) (*Payload, error) {
	var env envelope
	if err := json.Unmarshal(doc, &env); err != nil {
		return nil, &FormatError{Stage: StagePayload, Reason: "not a JSON document", Err: err}
	}

	switch {
	case tagPresent(env.Source):
		var source string
		if err := json.Unmarshal(env.Source, &source); err != nil {
			return nil, &FormatError{Stage: StagePayload, Reason: "export source is not a string", Err: err}
		}
		var files map[string]string
		if err := json.Unmarshal([]byte(source), &files); err != nil {
			return nil, &FormatError{Stage: StagePayload, Reason: "export source is not a file map", Err: err}
		}
		return &Payload{Kind: KindExport, Files: files, Meta: env.Meta}, nil

	case tagPresent(env.Text):
		var files map[string]string
		if err := json.Unmarshal(env.Text, &files); err != nil {
			return nil, &FormatError{Stage: StagePayload, Reason: "text is not a file map", Err: err}
		}
		return &Payload{Kind: KindWorkspace, Files: files, Meta: env.Header}, nil

	default:
		return nil, &FormatError{Stage: StagePayload, Reason: "unrecognized payload shape"}
	}
}

// tagPresent reports whether a raw JSON field was present and not null.
func tagPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
