package service

// QRCodeService renders contact deep links as scannable QR codes.
type QRCodeService interface {
	// GenerateContactQR encodes the given link into a PNG image.
	GenerateContactQR(link string) ([]byte, error)
}
