package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"kumoart/config"
	"kumoart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) service.ContactLinkService {
	t.Helper()

	cfg := &config.Config{
		WhatsApp: &config.WhatsAppConfig{Number: "6281234567890", BaseURL: "https://wa.me"},
		Brand:    &config.BrandConfig{Name: "Kumoart", Tagline: "Handmade"},
	}

	return NewLinkService(cfg)
}

// decodeLink splits a generated link into phone and decoded message text.
func decodeLink(t *testing.T, link string) (phone, text string) {
	t.Helper()

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)

	return strings.TrimPrefix(parsed.Path, "/"), parsed.Query().Get("text")
}

func TestBuildLink_ProductWithPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	link := svc.BuildLink(service.ContactLinkParams{
		ProductName: "Tas Rajut",
		Price:       "Rp 100.000",
	})

	phone, text := decodeLink(t, link)
	assert.Equal(t, "6281234567890", phone)
	assert.Contains(t, text, "Tas Rajut")
	assert.Contains(t, text, "Rp 100.000")
	assert.Contains(t, text, "cara order")
}

func TestBuildLink_ProductWithoutPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, text := decodeLink(t, svc.BuildLink(service.ContactLinkParams{ProductName: "Tas Rajut"}))
	assert.Contains(t, text, "Tas Rajut")
	assert.NotContains(t, text, "Harga")
}

func TestBuildLink_Event(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, text := decodeLink(t, svc.BuildLink(service.ContactLinkParams{EventTitle: "Workshop Rajut Pemula"}))
	assert.Contains(t, text, "Workshop Rajut Pemula")
	assert.Contains(t, text, "cara pendaftaran")
}

func TestBuildLink_CustomMessageWinsOverEverything(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, text := decodeLink(t, svc.BuildLink(service.ContactLinkParams{
		CustomMessage: "Pesan khusus saya",
		ProductName:   "Tas Rajut",
		Price:         "Rp 100.000",
		EventTitle:    "Workshop",
	}))
	assert.Equal(t, "Pesan khusus saya", text)
}

func TestBuildLink_NoParamsUsesGreetingAndDefaultPhone(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	phone, text := decodeLink(t, svc.BuildLink(service.ContactLinkParams{}))
	assert.Equal(t, "6281234567890", phone)
	assert.Contains(t, text, "Halo Kumoart Handmade!")
	assert.Contains(t, text, "bertanya tentang produk")
}

func TestBuildLink_ExplicitPhoneOverridesDefault(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	phone, _ := decodeLink(t, svc.BuildLink(service.ContactLinkParams{Phone: "628999"}))
	assert.Equal(t, "628999", phone)
}

// A malformed phone still yields a syntactically valid link; the service
// never validates numbers.
func TestBuildLink_MalformedPhoneIsKeptVerbatim(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	phone, _ := decodeLink(t, svc.BuildLink(service.ContactLinkParams{Phone: "not-a-number"}))
	assert.Equal(t, "not-a-number", phone)
}

func TestBuildCartLink(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	link := svc.BuildCartLink([]service.CartItem{
		{Name: "Tas Rajut", Price: "Rp 150.000", Quantity: 1},
		{Name: "Boneka Amigurumi", Price: "Rp 85.000", Quantity: 2},
	}, "")

	phone, text := decodeLink(t, link)
	assert.Equal(t, "6281234567890", phone)
	assert.Contains(t, text, "1. Tas Rajut x1 - Rp 150.000")
	assert.Contains(t, text, "2. Boneka Amigurumi x2 - Rp 85.000")
	assert.Contains(t, text, "cara pembayaran")
}

func TestBuildInquiryLink(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, text := decodeLink(t, svc.BuildInquiryLink("custom order warna", ""))
	assert.Contains(t, text, "bertanya tentang: custom order warna")
}
