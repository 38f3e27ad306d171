package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"product-extractor/internal/types"
)

// fakeFetcher serves canned HTML and records how the engine treats the
// page handle.
type fakeFetcher struct {
	html       string
	err        error
	fetchCalls int
	closeCalls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*types.Page, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return types.NewPage(f.html, func() { f.closeCalls++ }), nil
}

func newTestEngine(fetcher PageFetcher) *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &Engine{
		config:  types.DefaultConfig(),
		logger:  logger,
		fetcher: fetcher,
		metrics: NewMetrics(),
	}
}

func TestScrapeProduct_StructuredDataTakesPrecedence(t *testing.T) {
	// The page carries both a JSON-LD Product block and conflicting
	// heuristic markup; the snapshot must come from the JSON-LD block.
	fetcher := &fakeFetcher{html: `<html><head>
		<meta property="og:title" content="Heuristic Title">
		<script type="application/ld+json">
		{"@type": "Product", "name": "Structured Title",
		 "offers": {"price": "199.99", "priceCurrency": "EUR"}}
		</script>
	</head><body>
		<h1>Heuristic Title</h1>
		<div class="price">$11.11</div>
	</body></html>`}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://store.example/item/1")

	require.NoError(t, err)
	assert.Equal(t, "Structured Title", product.Title)
	assert.Equal(t, 199.99, product.Price)
	assert.Equal(t, "EUR", product.Currency)
}

func TestScrapeProduct_HeuristicFallback(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><head>
		<title>Mystery Gadget</title>
	</head><body>
		<span class="B_NuCI">Mystery Gadget</span>
		<div class="_30jeq3">₹1,499</div>
	</body></html>`}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://www.flipkart.com/gadget/p/itm1")

	require.NoError(t, err)
	assert.Equal(t, "Mystery Gadget", product.Title)
	assert.Equal(t, float64(1499), product.Price)
	assert.Equal(t, "INR", product.Currency)
	assert.True(t, product.IsAvailable)
}

func TestScrapeProduct_ResolvesRelativeImage(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><head>
		<meta property="og:image" content="/images/p.jpg">
	</head><body>
		<h1>Framed Print</h1>
		<div class="price">25.00</div>
	</body></html>`}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://store.example/item/1")

	require.NoError(t, err)
	assert.Equal(t, "https://store.example/images/p.jpg", product.ImageURL)
}

func TestScrapeProduct_JSONLDCurrencyOverridesDomain(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><head>
		<script type="application/ld+json">
		{"@type": "Product", "name": "Import", "offers": {"price": "10", "priceCurrency": "JPY"}}
		</script>
	</head><body></body></html>`}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://www.amazon.com/dp/B01")

	require.NoError(t, err)
	assert.Equal(t, "JPY", product.Currency)
}

func TestScrapeProduct_InvalidURL(t *testing.T) {
	fetcher := &fakeFetcher{}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "://bad url")

	assert.Nil(t, product)
	var invalid ErrInvalidInput
	assert.ErrorAs(t, err, &invalid)
	// Fails fast: no fetch may happen for a URL that never parsed.
	assert.Zero(t, fetcher.fetchCalls)
}

func TestScrapeProduct_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("navigation timeout")}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://store.example/item/1")

	assert.Nil(t, product)
	var failed ErrFetchFailed
	assert.ErrorAs(t, err, &failed)
}

func TestScrapeProduct_PageClosedExactlyOnce(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><body><h1>X</h1></body></html>`}
	engine := newTestEngine(fetcher)

	_, err := engine.ScrapeProduct(context.Background(), "https://store.example/item/1")

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.closeCalls)
}

func TestScrapeProduct_BlockedVersusNoPrice(t *testing.T) {
	blocked := &fakeFetcher{html: `<html><head><title>Robot Check</title></head>
		<body><p>Type the characters you see</p></body></html>`}
	engine := newTestEngine(blocked)

	product, err := engine.ScrapeProduct(context.Background(), "https://www.amazon.com/dp/B01")
	require.NoError(t, err)
	assert.Zero(t, product.Price)
	assert.Equal(t, OutcomeBlocked, ClassifyOutcome(product))

	unsupported := &fakeFetcher{html: `<html><head><title>Mystery Gadget</title></head>
		<body><p>layout with no price markup</p></body></html>`}
	engine = newTestEngine(unsupported)

	product, err = engine.ScrapeProduct(context.Background(), "https://store.example/item/2")
	require.NoError(t, err)
	assert.Zero(t, product.Price)
	assert.Equal(t, OutcomeNoPrice, ClassifyOutcome(product))
}

func TestScrapeProduct_PlaceholderTitle(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><body><div class="price">9.99</div></body></html>`}
	engine := newTestEngine(fetcher)

	product, err := engine.ScrapeProduct(context.Background(), "https://store.example/item/1")

	require.NoError(t, err)
	assert.Equal(t, "Unknown Product", product.Title)
	assert.Equal(t, 9.99, product.Price)
}

func TestClassifyOutcome(t *testing.T) {
	resolved := &types.ScrapedProduct{Title: "Echo Dot", Price: 49.99}
	assert.Equal(t, OutcomeResolved, ClassifyOutcome(resolved))

	blocked := &types.ScrapedProduct{Title: "Robot Check", Price: 0}
	assert.Equal(t, OutcomeBlocked, ClassifyOutcome(blocked))

	noPrice := &types.ScrapedProduct{Title: "Mystery Gadget", Price: 0}
	assert.Equal(t, OutcomeNoPrice, ClassifyOutcome(noPrice))
}
