package schema

// CatalogCategoryTable represents the 'categories' table
type CatalogCategoryTable struct {
	Table       string
	Slug        string
	Description string
}

// CatalogCategory is the schema definition for categories
var CatalogCategory = CatalogCategoryTable{
	Table:       "categories",
	Slug:        "slug",
	Description: "description",
}

func (t CatalogCategoryTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
