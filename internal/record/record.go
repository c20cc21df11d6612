// Package record turns raw record-store payloads into canonical domain values.
//
// Records arrive either with their data nested under a "fields" object or
// flat. Every accessor tolerates missing or malformed fields and falls back
// to a zero value instead of failing.
package record

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/totegamma/council-reports/internal/domain"
)

// Record is a single normalized record.
type Record struct {
	ID          string
	CreatedTime string
	fields      map[string]gjson.Result
}

// Parse decodes a collection payload. The payload is either a bare array of
// records or an object carrying them under "records".
func Parse(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json payload")
	}

	root := gjson.ParseBytes(data)
	var list gjson.Result
	switch {
	case root.IsArray():
		list = root
	case root.IsObject():
		list = root.Get("records")
	default:
		return nil, errors.Errorf("unexpected payload type %s", root.Type)
	}

	items := list.Array()
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		records = append(records, FromJSON(item))
	}
	return records, nil
}

// FromJSON normalizes one raw record object.
func FromJSON(raw gjson.Result) Record {
	fields := raw.Get("fields")
	if !fields.IsObject() {
		fields = raw
	}

	r := Record{
		ID:     strings.TrimSpace(Scalar(raw.Get("id"))),
		fields: fields.Map(),
	}

	created := raw.Get(domain.FieldCreatedTime)
	if !created.Exists() {
		created = r.Field(domain.FieldCreatedTime)
	}
	r.CreatedTime = strings.TrimSpace(created.String())
	return r
}

// Field returns the raw value, which is empty when the field is absent.
func (r Record) Field(name string) gjson.Result {
	return r.fields[name]
}

// Has reports whether the field is present with a non-null, non-blank value.
func (r Record) Has(name string) bool {
	v, ok := r.fields[name]
	if !ok || v.Type == gjson.Null {
		return false
	}
	if v.Type == gjson.String && strings.TrimSpace(v.Str) == "" {
		return false
	}
	return true
}

// Text returns the canonical scalar text of a field, trimmed.
func (r Record) Text(name string) string {
	return strings.TrimSpace(Scalar(r.fields[name]))
}

// URL resolves a link or attachment field.
func (r Record) URL(name string) string {
	return strings.TrimSpace(Scalar(r.fields[name]))
}

// Ref resolves a reference field to a trimmed record id.
func (r Record) Ref(name string) string {
	return strings.TrimSpace(Scalar(r.fields[name]))
}

func (r Record) Number(name string) float64 {
	return Coerce(r.fields[name])
}

func (r Record) Amount(name string) domain.Amount {
	return domain.Amount{Value: r.Number(name), Known: r.Has(name)}
}

func (r Record) Status(name string) domain.StatusSet {
	return Status(r.fields[name])
}
