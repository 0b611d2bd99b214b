package schema

// TagTable represents the 'tags' table
type TagTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// Tag is the schema definition for tags
var Tag = TagTable{
	Table:     "tags",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
}

func (t TagTable) Columns() []string { return []string{t.ID, t.Name, t.CreatedAt} }
