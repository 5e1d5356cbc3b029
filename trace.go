package fdict

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Trace captures provenance for one extended lookup: which alternatives were
// consulted, which one won, and what each transform did to the value.
type Trace struct {
	ID           string             `json:"id"`
	Key          string             `json:"key"`
	Alternatives []AlternativeTrace `json:"alternatives"`
	Transforms   []TransformTrace   `json:"transforms,omitempty"`
	Value        string             `json:"value"`
}

// AlternativeTrace details how one alternative participated in resolution.
// Alternatives after the winning one are not consulted and do not appear.
type AlternativeTrace struct {
	Kind  AlternativeKind `json:"kind"`
	Text  string          `json:"text"`
	Found bool            `json:"found"`
}

// TransformTrace records one transform application. A failed application
// carries the error text and no output; steps after it never run and are
// absent from the trace.
type TransformTrace struct {
	Name   string `json:"name"`
	Suffix string `json:"suffix,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ToJSON serialises the trace for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload previously generated via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// GetWithTrace resolves an extended key and reports per-stage provenance.
// The trace is populated as far as resolution progressed even when an error
// is returned.
func (d *Dict) GetWithTrace(raw string) (string, Trace, error) {
	trace := Trace{
		ID:  uuid.NewString(),
		Key: raw,
	}
	parsed, err := Parse(raw, d.registry)
	if err != nil {
		return "", trace, err
	}

	value := ""
	resolved := false
	for _, alt := range parsed.Alternatives {
		entry := AlternativeTrace{Kind: alt.Kind, Text: alt.Text}
		switch alt.Kind {
		case AlternativeLiteral:
			value = alt.Text
			entry.Found = true
		case AlternativeReference:
			value, entry.Found = d.store.Get(alt.Text)
		}
		trace.Alternatives = append(trace.Alternatives, entry)
		if entry.Found {
			resolved = true
			break
		}
	}
	if !resolved {
		if !parsed.TrailingEmpty {
			return "", trace, &MissingKeyError{Key: parsed.missingName()}
		}
		value = ""
	}

	for _, spec := range parsed.Transforms {
		record := TransformTrace{
			Name:   spec.Name,
			Suffix: spec.Suffix,
			Input:  value,
		}
		out, err := applyTransforms(value, []TransformSpec{spec}, d.registry)
		if err != nil {
			record.Error = err.Error()
			trace.Transforms = append(trace.Transforms, record)
			return "", trace, err
		}
		record.Output = out
		trace.Transforms = append(trace.Transforms, record)
		value = out
	}

	trace.Value = value
	return value, trace, nil
}
