package schema

// UsersUserTable represents the 'users' table
type UsersUserTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// UsersUser is the schema definition for users
var UsersUser = UsersUserTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

func (t UsersUserTable) Columns() []string {
	return []string{t.Username, t.Name, t.AvatarURL}
}
