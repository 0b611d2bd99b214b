package schema

// TranslationTable represents the 'translations' table
type TranslationTable struct {
	Table     string
	ID        string
	Key       string
	LocaleID  string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// Translation is the schema definition for translations
var Translation = TranslationTable{
	Table:     "translations",
	ID:        "id",
	Key:       "key",
	LocaleID:  "locale_id",
	Content:   "content",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t TranslationTable) Columns() []string {
	return []string{t.ID, t.Key, t.LocaleID, t.Content, t.CreatedAt, t.UpdatedAt}
}
