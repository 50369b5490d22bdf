package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/domain/service"
	"kumoart/internal/errors"
)

// ContactHandler serves pre-filled messaging links and the contact QR code.
type ContactHandler struct {
	links  service.ContactLinkService
	qr     service.QRCodeService
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(links service.ContactLinkService, qr service.QRCodeService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		links:  links,
		qr:     qr,
		logger: logger,
	}
}

// contactLinkQuery binds the optional deep link fields from the query form.
type contactLinkQuery struct {
	Phone   string `query:"phone"`
	Product string `query:"product"`
	Price   string `query:"price"`
	Event   string `query:"event"`
	Message string `query:"message"`
}

// cartRequest is the payload for a multi-product order link. The item
// shape carries the validate tags here so the domain type stays plain.
type cartRequest struct {
	Phone string            `json:"phone"`
	Items []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type cartItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// BuildLink returns a wa.me link pre-filled from the query parameters.
func (h *ContactHandler) BuildLink(c echo.Context) error {
	var query contactLinkQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	link := h.links.BuildLink(service.ContactLinkParams{
		Phone:         query.Phone,
		ProductName:   query.Product,
		Price:         query.Price,
		EventTitle:    query.Event,
		CustomMessage: query.Message,
	})

	return c.JSON(http.StatusOK, map[string]string{"link": link})
}

// BuildCartLink returns a wa.me link listing the posted cart items.
func (h *ContactHandler) BuildCartLink(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	items := make([]service.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CartItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"link": h.links.BuildCartLink(items, req.Phone),
	})
}

// BuildInquiryLink returns a wa.me link asking about the given subject.
func (h *ContactHandler) BuildInquiryLink(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"link": h.links.BuildInquiryLink(c.QueryParam("subject"), c.QueryParam("phone")),
	})
}

// ContactQR returns a PNG QR code encoding the pre-filled contact link
// built from the same query parameters as BuildLink.
func (h *ContactHandler) ContactQR(c echo.Context) error {
	var query contactLinkQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	link := h.links.BuildLink(service.ContactLinkParams{
		Phone:         query.Phone,
		ProductName:   query.Product,
		Price:         query.Price,
		EventTitle:    query.Event,
		CustomMessage: query.Message,
	})

	png, err := h.qr.GenerateContactQR(link)
	if err != nil {
		h.logger.Error("failed to encode contact QR", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrInternalError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
