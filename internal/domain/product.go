package domain

// Product is one record inside the products.json collection document.
// Timestamps are ISO-8601 strings because that is how the documents are
// stored; callers never parse them, they only refresh them.
type Product struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	SKU             string            `json:"sku,omitempty"`
	Price           float64           `json:"price"`
	OriginalPrice   float64           `json:"originalPrice,omitempty"`
	Category        string            `json:"category"`
	InStock         bool              `json:"inStock"`
	StockQuantity   int               `json:"stockQuantity,omitempty"`
	Description     string            `json:"description,omitempty"`
	Brand           string            `json:"brand,omitempty"`
	Series          string            `json:"series,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Specs           map[string]string `json:"specs,omitempty"`
	Weight          string            `json:"weight,omitempty"`
	Warranty        string            `json:"warranty,omitempty"`
	RelatedProducts []int             `json:"relatedProducts,omitempty"`
	Featured        bool              `json:"featured,omitempty"`
	CreatedAt       string            `json:"createdAt,omitempty"`
	UpdatedAt       string            `json:"updatedAt,omitempty"`
}

// Category is an entry of the fixed storefront category tree.
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Children []Category `json:"children,omitempty"`
}

// Categories is the fixed list products are filed under.
var Categories = []Category{
	{ID: "inverters", Name: "Inverter / VFD", Slug: "inverters", Children: []Category{
		{ID: "ms300", Name: "MS300 Series", Slug: "ms300"},
		{ID: "me300", Name: "ME300 Series", Slug: "me300"},
		{ID: "vfd-e", Name: "VFD-E Series", Slug: "vfd-e"},
		{ID: "vfd-el", Name: "VFD-EL Series", Slug: "vfd-el"},
	}},
	{ID: "hmi", Name: "HMI Touch Screen", Slug: "hmi"},
	{ID: "plc", Name: "PLC Controller", Slug: "plc"},
	{ID: "servo", Name: "Servo Motor & Drive", Slug: "servo"},
	{ID: "dtk", Name: "Temperature Controller", Slug: "dtk"},
	{ID: "power-supply", Name: "Power Supply", Slug: "power-supply"},
}

type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
	SortLatest    SortKey = "latest"
)

// ProductFilter composes by logical AND. Featured filters only when set.
type ProductFilter struct {
	Query    string
	Category string
	Featured *bool
	Sort     SortKey
}
