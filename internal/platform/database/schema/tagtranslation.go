package schema

// TagTranslationTable represents the 'tag_translation' association table
type TagTranslationTable struct {
	Table         string
	TranslationID string
	TagID         string
}

// TagTranslation is the schema definition for tag_translation
var TagTranslation = TagTranslationTable{
	Table:         "tag_translation",
	TranslationID: "translation_id",
	TagID:         "tag_id",
}
