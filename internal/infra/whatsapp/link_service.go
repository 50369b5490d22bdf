// Package whatsapp builds wa.me deep links with pre-filled order messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"kumoart/config"
	"kumoart/internal/domain/service"
)

type linkService struct {
	baseURL      string
	defaultPhone string
	brandName    string
}

// NewLinkService creates the deep-link generator. The configured business
// number is used whenever a caller does not supply one.
func NewLinkService(cfg *config.Config) service.ContactLinkService {
	return &linkService{
		baseURL:      strings.TrimRight(cfg.WhatsApp.BaseURL, "/"),
		defaultPhone: cfg.WhatsApp.Number,
		brandName:    cfg.Brand.FullName(),
	}
}

func (s *linkService) BuildLink(params service.ContactLinkParams) string {
	phone := params.Phone
	if phone == "" {
		phone = s.defaultPhone
	}

	var message string
	switch {
	case params.CustomMessage != "":
		message = params.CustomMessage
	case params.ProductName != "" && params.Price != "":
		message = fmt.Sprintf(
			"Halo, saya tertarik dengan produk berikut:\n\nNama Produk : %s\nHarga       : %s\n\nMohon info ketersediaan & cara order 🙏",
			params.ProductName, params.Price,
		)
	case params.ProductName != "":
		message = fmt.Sprintf(
			"Halo, saya tertarik dengan produk berikut:\n\nNama Produk : %s\n\nMohon info ketersediaan & cara order 🙏",
			params.ProductName,
		)
	case params.EventTitle != "":
		message = fmt.Sprintf(
			"Halo, saya tertarik dengan event berikut:\n\nEvent : %s\n\nMohon info lebih lanjut & cara pendaftaran 🙏",
			params.EventTitle,
		)
	default:
		message = fmt.Sprintf(
			"Halo %s!\n\nSaya ingin bertanya tentang produk Anda.\n\nMohon informasinya 🙏",
			s.brandName,
		)
	}

	return s.link(phone, message)
}

func (s *linkService) BuildCartLink(items []service.CartItem, phone string) string {
	if phone == "" {
		phone = s.defaultPhone
	}

	var lines []string
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s x%d - %s", i+1, item.Name, item.Quantity, item.Price))
	}

	message := fmt.Sprintf(
		"Halo, saya ingin memesan produk berikut:\n\n%s\n\nMohon info total harga & cara pembayaran 🙏",
		strings.Join(lines, "\n"),
	)

	return s.link(phone, message)
}

func (s *linkService) BuildInquiryLink(subject string, phone string) string {
	if phone == "" {
		phone = s.defaultPhone
	}

	message := fmt.Sprintf(
		"Halo %s!\n\nSaya ingin bertanya tentang: %s\n\nMohon informasinya 🙏",
		s.brandName, subject,
	)

	return s.link(phone, message)
}

// link percent-encodes the message into the text query parameter. The phone
// number is used verbatim; it is never validated.
func (s *linkService) link(phone, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", s.baseURL, phone, url.QueryEscape(message))
}
