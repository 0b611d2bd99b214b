package schema

// UserAccountTable represents the 'users' table
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users
var UserAccount = UserAccountTable{
	Table:        "users",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "password_hash",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.PasswordHash, t.CreatedAt, t.UpdatedAt}
}
