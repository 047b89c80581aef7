package models

// Category is the closed set of event types.
type Category string

const (
	CategoryBirthday    Category = "День Рождения"
	CategoryAnniversary Category = "Годовщина"
	CategoryDeadline    Category = "Дедлайн"
	CategoryOther       Category = "Прочее"
)

// categoryLabels maps the button labels shown to the user onto category
// values. Lookup is exact-match; anything else is not a category.
var categoryLabels = map[string]Category{
	"🎂 День Рождения": CategoryBirthday,
	"💍 Годовщина":     CategoryAnniversary,
	"⏰ Дедлайн":       CategoryDeadline,
	"➕ Прочее":        CategoryOther,
}

// categoryLabelOrder keeps the keyboard rows stable.
var categoryLabelOrder = []string{
	"🎂 День Рождения",
	"💍 Годовщина",
	"⏰ Дедлайн",
	"➕ Прочее",
}

// CategoryFromLabel resolves a button label to its category value.
func CategoryFromLabel(label string) (Category, bool) {
	c, ok := categoryLabels[label]
	return c, ok
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBirthday, CategoryAnniversary, CategoryDeadline, CategoryOther:
		return true
	}
	return false
}

// CategoryLabels returns the button labels in presentation order.
func CategoryLabels() []string {
	out := make([]string, len(categoryLabelOrder))
	copy(out, categoryLabelOrder)
	return out
}
