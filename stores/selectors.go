package stores

// Profile is the ordered selector table for one store. Each list is tried in
// order until a selector yields non-empty content; stores share no behavior
// beyond that.
type Profile struct {
	Title      []string
	Price      []string
	Image      []string
	OutOfStock []string
}

// genericProfile is the store-agnostic fallback table. Inherently lower
// precision than the store tables; that is a known limitation of unknown
// page layouts, not something the engine tries to compensate for.
var genericProfile = Profile{
	Title:      []string{`h1[itemprop="name"]`, "h1.product-title", "h1"},
	Price:      []string{`[itemprop="price"]`, ".price", "#price", ".product-price", ".sale-price", `[class*="price"]`},
	Image:      []string{`img[itemprop="image"]`, ".product-image img", "#product-image img"},
	OutOfStock: []string{".out-of-stock", ".sold-out"},
}

// profiles holds the hand-picked selector tables. Stores without an entry
// (target, bestbuy, newegg, lazada, zalando, asos, myntra) fall back to the
// generic table; their product pages carry usable JSON-LD often enough that
// dedicated tables were never worth maintaining.
var profiles = map[ID]Profile{
	Amazon: {
		Title:      []string{"#productTitle", "#title"},
		Price:      []string{".a-price-whole", "#priceblock_ourprice", "#priceblock_dealprice", ".a-price .a-offscreen", "#corePrice_feature_div .a-price-whole"},
		Image:      []string{"#landingImage", "img.a-dynamic-image", "#imgBlkFront"},
		OutOfStock: []string{"#availability .a-color-price", "#outOfStock"},
	},
	Flipkart: {
		Title:      []string{"span.B_NuCI", "h1._9E25nV"},
		Price:      []string{"div._30jeq3._16Jk6d", "div._30jeq3", "._1vC4OE._2rQ-NK"},
		Image:      []string{"img._396cs4", "img._2r_T1I"},
		OutOfStock: []string{"div._16FRp0"},
	},
	Ebay: {
		Title:      []string{"h1.x-item-title__mainTitle", `h1[itemprop="name"]`},
		Price:      []string{`[data-testid="x-price-primary"]`, ".x-price-primary", "#prcIsum", ".vi-price"},
		Image:      []string{"img#icImg", ".ux-image-magnify__image img"},
		OutOfStock: []string{".d-quantity__availability"},
	},
	AliExpress: {
		Title:      []string{`h1[data-pl="product-title"]`, ".product-title-text"},
		Price:      []string{".product-price-value", `[class*="Price"]`, ".uniform-banner-box-price"},
		Image:      []string{".magnifier-image img", `img[class*="product"]`},
		OutOfStock: nil,
	},
	Etsy: {
		Title:      []string{"h1[data-buy-box-listing-title]", "h1"},
		Price:      []string{`[data-buy-box-region="price"] p`, ".wt-text-title-03"},
		Image:      []string{"img[data-listing-card-listing-image]", ".listing-page-image-carousel img"},
		OutOfStock: nil,
	},
	Walmart: {
		Title:      []string{`h1[itemprop="name"]`, `[data-testid="product-title"]`},
		Price:      []string{`[itemprop="price"]`, `[data-automation="buybox-price"]`, ".price-characteristic", `span[itemprop="price"]`},
		Image:      []string{`[data-testid="hero-image"] img`, ".prod-hero-image img"},
		OutOfStock: nil,
	},
	Shopee: {
		Title:      []string{"._44qnta", ".qaNIZt"},
		Price:      []string{".pqTWkA", "._3n5NQx"},
		Image:      []string{".jTTPTv img"},
		OutOfStock: nil,
	},
}

// ProfileFor returns the selector table for a store, or the generic table
// when no dedicated one exists.
func ProfileFor(id ID) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return genericProfile
}
