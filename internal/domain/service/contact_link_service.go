// Package service defines infrastructure service contracts used by the
// usecase and delivery layers.
package service

// ContactLinkParams carries the optional fields used to build a pre-filled
// messaging deep link. All fields are optional; Phone falls back to the
// configured business number.
type ContactLinkParams struct {
	Phone         string
	ProductName   string
	Price         string
	EventTitle    string
	CustomMessage string
}

// CartItem is a single line in a multi-product order message.
type CartItem struct {
	Name     string
	Price    string
	Quantity int
}

// ContactLinkService builds WhatsApp deep links with pre-filled messages.
// Phone numbers are not validated; a malformed number yields a syntactically
// valid but non-functional link.
type ContactLinkService interface {
	// BuildLink builds a wa.me link. Message priority: custom message,
	// product name + price, product name only, event title, generic
	// greeting.
	BuildLink(params ContactLinkParams) string

	// BuildCartLink builds a link with a numbered list of cart items.
	BuildCartLink(items []CartItem, phone string) string

	// BuildInquiryLink builds a link asking about the given subject.
	BuildInquiryLink(subject string, phone string) string
}
