package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal serializes a single project in the interchange format.
func Marshal(p *Project) ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("project: couldn't marshal %s: %w", p.ID, err)
	}
	return b, nil
}

// MarshalCollection serializes projects as one JSON array in the given
// order.
func MarshalCollection(ps []*Project) ([]byte, error) {
	if ps == nil {
		ps = []*Project{}
	}
	b, err := json.Marshal(ps)
	if err != nil {
		return nil, fmt.Errorf("project: couldn't marshal collection: %w", err)
	}
	return b, nil
}

// wire accepts the id as either a string or a number.
type wire struct {
	Project
	ID json.RawMessage `json:"id"`
}

// Parse decodes and validates one project record. The record must carry an
// id and a non-empty title. Missing fields take their zero values.
func Parse(raw []byte) (*Project, error) {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("project: couldn't parse record: %v: %w", err, ErrValidation)
	}
	id, err := parseID(w.ID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTitle(w.Title); err != nil {
		return nil, err
	}
	p := w.Project
	p.ID = id
	p.normalize()
	return &p, nil
}

// ParseCollection decodes a stored JSON array of project records. Records
// are trusted: only the id shape is checked, so an untitled project written
// by the studio stays readable.
func ParseCollection(raw []byte) ([]*Project, error) {
	var records []wire
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("project: couldn't parse collection: %v: %w", err, ErrValidation)
	}
	ps := make([]*Project, 0, len(records))
	for i, w := range records {
		id, err := parseID(w.ID)
		if err != nil {
			return nil, fmt.Errorf("project: record %d: %w", i, err)
		}
		p := w.Project
		p.ID = id
		p.normalize()
		ps = append(ps, &p)
	}
	return ps, nil
}

func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("project: record without id: %w", ErrValidation)
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return "", fmt.Errorf("project: record with empty id: %w", ErrValidation)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("project: record with invalid id %s: %w", raw, ErrValidation)
	}
	if f, err := n.Float64(); err != nil || f == 0 {
		return "", fmt.Errorf("project: record with invalid id %s: %w", raw, ErrValidation)
	}
	return n.String(), nil
}
