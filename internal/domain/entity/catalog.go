package entity

// CatalogResource is a lazily upserted local shadow of a host-platform
// catalog entity. Products and collections are keyed by numeric id; vendors
// and tags by name (Title left empty for those kinds).
type CatalogResource struct {
	Shop  string       `json:"shop"`
	Kind  ResourceKind `json:"kind"`
	ID    string       `json:"id"`
	Title string       `json:"title"`
}

// CatalogProduct is a product row from the host platform's Admin API.
type CatalogProduct struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Vendor      string              `json:"vendor"`
	Tags        []string            `json:"tags"`
	Collections []CatalogCollection `json:"collections"`
}

// CatalogCollection is a collection row from the host platform's Admin API.
type CatalogCollection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CatalogSnapshot is the full catalog listing served to the rule authoring UI.
type CatalogSnapshot struct {
	Products    []CatalogProduct    `json:"allProducts"`
	Collections []CatalogCollection `json:"allCollections"`
	Vendors     []string            `json:"allVendors"`
	Tags        []string            `json:"allTags"`
}
