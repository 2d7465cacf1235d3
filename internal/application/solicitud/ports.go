package solicitud

import "github.com/nublack/nublack-api/internal/domain/entity"

// ReceiptGenerator genera el comprobante PDF de una solicitud.
type ReceiptGenerator interface {
	Generate(s *entity.Solicitud) ([]byte, error)
}
