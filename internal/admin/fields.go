package admin

import (
	"fmt"
	"folio/internal/models"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindTextArea
	KindNumber
	KindStringArray
	KindSkillList
	KindChoice
	KindToggle
	KindLinkList
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextArea:
		return "textarea"
	case KindNumber:
		return "number"
	case KindStringArray:
		return "array"
	case KindSkillList:
		return "skills"
	case KindChoice:
		return "choice"
	case KindToggle:
		return "toggle"
	case KindLinkList:
		return "links"
	default:
		return "unknown"
	}
}

type Field struct {
	Key         string
	Label       string
	Kind        FieldKind
	Placeholder string
	Choices     []string
	Default     Value
}

// Value is a typed form value. Each kind of field produces exactly one
// Value type.
type Value interface {
	Accept(v ValueVisitor)
	Raw() any
}

type ValueVisitor interface {
	VisitText(v TextValue)
	VisitNumber(v NumberValue)
	VisitStrings(v StringsValue)
	VisitSkills(v SkillsValue)
	VisitBool(v BoolValue)
	VisitLinks(v LinksValue)
}

type (
	TextValue    string
	NumberValue  int64
	StringsValue []string
	SkillsValue  []models.Skill
	BoolValue    bool
	LinksValue   []models.Link
)

func (v TextValue) Accept(vis ValueVisitor)    { vis.VisitText(v) }
func (v NumberValue) Accept(vis ValueVisitor)  { vis.VisitNumber(v) }
func (v StringsValue) Accept(vis ValueVisitor) { vis.VisitStrings(v) }
func (v SkillsValue) Accept(vis ValueVisitor)  { vis.VisitSkills(v) }
func (v BoolValue) Accept(vis ValueVisitor)    { vis.VisitBool(v) }
func (v LinksValue) Accept(vis ValueVisitor)   { vis.VisitLinks(v) }

func (v TextValue) Raw() any    { return string(v) }
func (v NumberValue) Raw() any  { return int64(v) }
func (v StringsValue) Raw() any { return []string(slices.Clone(v)) }
func (v SkillsValue) Raw() any  { return []models.Skill(slices.Clone(v)) }
func (v BoolValue) Raw() any    { return bool(v) }
func (v LinksValue) Raw() any   { return []models.Link(slices.Clone(v)) }

// Empty is the value a blank form starts with.
func (f Field) Empty() Value {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindNumber:
		return NumberValue(0)
	case KindStringArray:
		return StringsValue{}
	case KindSkillList:
		return SkillsValue{}
	case KindToggle:
		return BoolValue(false)
	case KindLinkList:
		return LinksValue{}
	case KindChoice:
		if len(f.Choices) > 0 {
			return TextValue(f.Choices[0])
		}
		return TextValue("")
	default:
		return TextValue("")
	}
}

// Coerce converts loosely typed input (decoded JSON, form strings) into
// the field's Value type.
func (f Field) Coerce(raw any) (Value, error) {
	if raw == nil {
		return f.Empty(), nil
	}
	switch f.Kind {
	case KindText, KindTextArea:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, f.invalid(err)
		}
		return TextValue(s), nil
	case KindChoice:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, f.invalid(err)
		}
		if !slices.Contains(f.Choices, s) {
			return nil, fmt.Errorf("%s: %q is not one of %v", f.Key, s, f.Choices)
		}
		return TextValue(s), nil
	case KindNumber:
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, f.invalid(err)
		}
		return NumberValue(n), nil
	case KindToggle:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, f.invalid(err)
		}
		return BoolValue(b), nil
	case KindStringArray:
		if s, ok := raw.(string); ok {
			return StringsValue(splitLines(s)), nil
		}
		items, err := cast.ToStringSliceE(raw)
		if err != nil {
			return nil, f.invalid(err)
		}
		return StringsValue(items), nil
	case KindSkillList:
		var skills []models.Skill
		if err := remarshal(raw, &skills); err != nil {
			return nil, f.invalid(err)
		}
		return SkillsValue(nonNil(skills)), nil
	case KindLinkList:
		var links []models.Link
		if err := remarshal(raw, &links); err != nil {
			return nil, f.invalid(err)
		}
		return LinksValue(nonNil(links)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported field kind %d", f.Key, f.Kind)
	}
}

func (f Field) invalid(err error) error {
	return fmt.Errorf("%s: invalid %s value: %w", f.Key, f.Kind, err)
}

func remarshal(raw any, dst any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
