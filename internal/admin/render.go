package admin

import "folio/internal/models"

type FieldView struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Placeholder string   `json:"placeholder,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Value       any      `json:"value"`
}

type FormView struct {
	Collection string      `json:"collection"`
	Title      string      `json:"title"`
	Mode       string      `json:"mode"`
	EditingID  string      `json:"editingId,omitempty"`
	Fields     []FieldView `json:"fields"`
	Error      string      `json:"error,omitempty"`
}

// fieldRenderer turns a typed value into its wire representation.
type fieldRenderer struct {
	out any
}

func (r *fieldRenderer) VisitText(v TextValue)     { r.out = string(v) }
func (r *fieldRenderer) VisitNumber(v NumberValue) { r.out = int64(v) }
func (r *fieldRenderer) VisitBool(v BoolValue)     { r.out = bool(v) }

func (r *fieldRenderer) VisitStrings(v StringsValue) {
	r.out = nonNil([]string(v))
}

func (r *fieldRenderer) VisitSkills(v SkillsValue) {
	r.out = nonNil([]models.Skill(v))
}

func (r *fieldRenderer) VisitLinks(v LinksValue) {
	r.out = nonNil([]models.Link(v))
}

// Render lays out the form in schema order followed by the order field.
func Render(schema *Schema, form *Form) FormView {
	view := FormView{
		Collection: schema.Collection,
		Title:      schema.Title,
		Mode:       "create",
		EditingID:  form.EditingID,
		Fields:     make([]FieldView, 0, len(schema.Fields)+1),
		Error:      form.Err,
	}
	if form.EditingID != "" {
		view.Mode = "edit"
	}

	for _, f := range schema.Fields {
		v, ok := form.Values[f.Key]
		if !ok {
			v = f.Empty()
		}
		r := &fieldRenderer{}
		v.Accept(r)
		view.Fields = append(view.Fields, FieldView{
			Key:         f.Key,
			Label:       f.Label,
			Kind:        f.Kind.String(),
			Placeholder: f.Placeholder,
			Choices:     f.Choices,
			Value:       r.out,
		})
	}
	view.Fields = append(view.Fields, FieldView{
		Key:   "order",
		Label: "Order",
		Kind:  KindNumber.String(),
		Value: form.Order,
	})
	return view
}
