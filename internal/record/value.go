package record

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/totegamma/council-reports/internal/domain"
)

// Shape is the structural variant a field value arrived in.
type Shape int

const (
	ShapeAbsent Shape = iota
	ShapeScalar
	ShapeList
	ShapeAttachment
	ShapeOther
)

// ShapeOf classifies a raw field value.
func ShapeOf(v gjson.Result) Shape {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return ShapeAbsent
	case v.IsArray():
		return ShapeList
	case v.IsObject():
		if v.Get("url").Exists() {
			return ShapeAttachment
		}
		return ShapeOther
	default:
		return ShapeScalar
	}
}

// Scalar collapses a field into its canonical scalar text. Lists yield
// their first element and attachments yield their url.
func Scalar(v gjson.Result) string {
	switch ShapeOf(v) {
	case ShapeScalar:
		return scalarText(v)
	case ShapeList:
		items := v.Array()
		if len(items) == 0 {
			return ""
		}
		first := items[0]
		if ShapeOf(first) == ShapeAttachment {
			return first.Get("url").String()
		}
		if ShapeOf(first) == ShapeScalar {
			return scalarText(first)
		}
		return ""
	case ShapeAttachment:
		return v.Get("url").String()
	default:
		return ""
	}
}

func scalarText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Status decodes a scalar status, a list of strings or a list of
// {name|value} option objects.
func Status(v gjson.Result) domain.StatusSet {
	switch ShapeOf(v) {
	case ShapeScalar:
		return domain.NewStatusSet(scalarText(v))
	case ShapeList:
		var values []string
		for _, item := range v.Array() {
			switch {
			case item.Type == gjson.String:
				values = append(values, item.Str)
			case item.IsObject():
				if name := item.Get("name"); name.Exists() {
					values = append(values, name.String())
				} else {
					values = append(values, item.Get("value").String())
				}
			}
		}
		return domain.NewStatusSet(values...)
	default:
		return domain.StatusSet{}
	}
}

// HasStatus is a convenience for matching a raw status value against tag.
func HasStatus(v gjson.Result, tag string) bool {
	return Status(v).Has(tag)
}
