package domain

// Product is the subset of an Open Food Facts product record the service
// cares about. Nutriments is kept raw; values may be numbers, numeric
// strings, empty strings, or absent.
type Product struct {
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	Categories      string         `json:"categories"`
	NutriscoreGrade string         `json:"nutriscore_grade"`
	Ingredients     []Ingredient   `json:"ingredients"`
	ImageURL        string         `json:"image_url"`
	Nutriments      map[string]any `json:"nutriments"`
}

// Ingredient is a single entry of a product's ingredient list.
type Ingredient struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

// ProductEnvelope is the response shape of the Open Food Facts
// product-by-barcode endpoint. Product is nil when the barcode is unknown.
type ProductEnvelope struct {
	Code    string   `json:"code"`
	Status  int      `json:"status"`
	Product *Product `json:"product"`
}
