package schema

// LocaleTable represents the 'locales' table
type LocaleTable struct {
	Table     string
	ID        string
	Code      string
	CreatedAt string
}

// Locale is the schema definition for locales
var Locale = LocaleTable{
	Table:     "locales",
	ID:        "id",
	Code:      "code",
	CreatedAt: "created_at",
}

func (t LocaleTable) Columns() []string { return []string{t.ID, t.Code, t.CreatedAt} }
