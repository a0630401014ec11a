package m_product

// DefaultPath is where the catalog file lives relative to the working directory.
const DefaultPath = "data/produits.json"

// Keys of a product object in the catalog file, in the order they are written.
// Other tools read the file, so these names are fixed.
const (
	keyID            = "id"
	keySlug          = "slug"
	keyTitle         = "title"
	keyShort         = "short"
	keyCategory      = "category"
	keyBoutique      = "boutique"
	keyPrice         = "price"
	keyPriceBoutique = "priceBoutique"
	keyOldPrice      = "oldPrice"
	keyStock         = "stock"
	keyRating        = "rating"
	keyImages        = "images"
	keyFeatures      = "features"
	keyDescription   = "description"
)

// Keys lists every key in write order.
var Keys = []string{
	keyID, keySlug, keyTitle, keyShort, keyCategory, keyBoutique,
	keyPrice, keyPriceBoutique, keyOldPrice, keyStock, keyRating,
	keyImages, keyFeatures, keyDescription,
}
