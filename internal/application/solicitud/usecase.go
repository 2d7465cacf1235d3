package solicitud

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
)

// SolicitudUseCase flujo de pedidos: creación desde el carrito, máquina de
// estados, listado filtrado y comprobante PDF.
type SolicitudUseCase struct {
	repo    repository.SolicitudRepository
	carts   repository.CartRepository
	receipt ReceiptGenerator
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(repo repository.SolicitudRepository, carts repository.CartRepository, receipt ReceiptGenerator) *SolicitudUseCase {
	return &SolicitudUseCase{repo: repo, carts: carts, receipt: receipt}
}

// Create convierte el carrito vigente del usuario en una solicitud pendiente.
// Toma un snapshot inmutable de cada línea, calcula subtotal = Σ(precio×cantidad)
// y total = subtotal (las claves de impuestos/envío de ajustes no se consultan).
// El número consecutivo lo asigna el repositorio al persistir; el carrito se
// vacía solo después de persistir la solicitud.
func (uc *SolicitudUseCase) Create(email string, in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	cart, err := uc.carts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	detalles := make([]entity.Detalle, 0, len(cart.Items))
	subtotal := decimal.Zero
	for _, it := range cart.Items {
		lineaSubtotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		detalles = append(detalles, entity.Detalle{
			ProductID:      it.ProductID,
			NombreProducto: it.NombreProducto,
			Imagen:         it.Imagen,
			Talla:          it.Talla,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       lineaSubtotal,
		})
		subtotal = subtotal.Add(lineaSubtotal)
	}
	s := &entity.Solicitud{
		ID:            uuid.New().String(),
		UserEmail:     strings.ToLower(email),
		NombreCliente: in.NombreCliente,
		Telefono:      in.Telefono,
		Direccion:     in.Direccion,
		Ciudad:        in.Ciudad,
		MetodoPago:    in.MetodoPago,
		Detalles:      detalles,
		Subtotal:      subtotal,
		Total:         subtotal,
		Estado:        entity.EstadoPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	if err := uc.carts.Delete(email); err != nil {
		// la solicitud ya existe; el carrito huérfano se reporta pero no revierte
		return toSolicitudResponse(s), err
	}
	return toSolicitudResponse(s), nil
}

// GetByID obtiene una solicitud. Un cliente solo puede ver las propias;
// ownerEmail vacío (administrador) ve cualquiera.
func (uc *SolicitudUseCase) GetByID(id, ownerEmail string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if ownerEmail != "" && !strings.EqualFold(s.UserEmail, ownerEmail) {
		return nil, domain.ErrForbidden
	}
	return toSolicitudResponse(s), nil
}

// ChangeEstado aplica una transición de la máquina de estados:
// pendiente → aprobada → en_camino → entregada, con cancelación desde
// pendiente o aprobada. Cualquier otro salto produce ErrInvalidTransition.
// Aprobar sintetiza la asignación de domiciliario; cancelar exige motivo.
func (uc *SolicitudUseCase) ChangeEstado(id string, in dto.ChangeEstadoRequest) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if !entity.CanTransition(s.Estado, in.Estado) {
		return nil, domain.ErrInvalidTransition
	}
	switch in.Estado {
	case entity.EstadoAprobada:
		// No existe un directorio real de domiciliarios: asignación placeholder.
		s.Domiciliario = &entity.Domiciliario{
			Nombre:     "Por asignar",
			Telefono:   "3000000000",
			AsignadoEn: time.Now(),
		}
	case entity.EstadoCancelada:
		if strings.TrimSpace(in.Motivo) == "" {
			return nil, domain.ErrInvalidInput
		}
		s.MotivoCancelacion = in.Motivo
	}
	s.Estado = in.Estado
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSolicitudResponse(s), nil
}

// Cancel es la cancelación hecha por el propio cliente: solo sobre su
// solicitud y solo mientras esté pendiente.
func (uc *SolicitudUseCase) Cancel(id, ownerEmail, motivo string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if !strings.EqualFold(s.UserEmail, ownerEmail) {
		return nil, domain.ErrForbidden
	}
	if s.Estado != entity.EstadoPendiente {
		return nil, domain.ErrInvalidTransition
	}
	return uc.ChangeEstado(id, dto.ChangeEstadoRequest{Estado: entity.EstadoCancelada, Motivo: motivo})
}

// List lista solicitudes filtradas y paginadas.
func (uc *SolicitudUseCase) List(filter repository.SolicitudFilter, limit, offset int) (*dto.SolicitudListResponse, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSolicitudResponse(s))
	}
	return &dto.SolicitudListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Receipt genera el comprobante PDF de la solicitud, con el mismo control de
// propiedad que GetByID.
func (uc *SolicitudUseCase) Receipt(id, ownerEmail string) ([]byte, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if ownerEmail != "" && !strings.EqualFold(s.UserEmail, ownerEmail) {
		return nil, domain.ErrForbidden
	}
	return uc.receipt.Generate(s)
}

func toSolicitudResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	if s == nil {
		return nil
	}
	detalles := make([]dto.DetalleResponse, 0, len(s.Detalles))
	for _, d := range s.Detalles {
		detalles = append(detalles, dto.DetalleResponse{
			ProductID:      d.ProductID,
			NombreProducto: d.NombreProducto,
			Imagen:         d.Imagen,
			Talla:          d.Talla,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	var dom *dto.DomiciliarioResponse
	if s.Domiciliario != nil {
		dom = &dto.DomiciliarioResponse{
			Nombre:     s.Domiciliario.Nombre,
			Telefono:   s.Domiciliario.Telefono,
			AsignadoEn: s.Domiciliario.AsignadoEn,
		}
	}
	return &dto.SolicitudResponse{
		ID:                s.ID,
		Numero:            s.Numero,
		UserEmail:         s.UserEmail,
		NombreCliente:     s.NombreCliente,
		Telefono:          s.Telefono,
		Direccion:         s.Direccion,
		Ciudad:            s.Ciudad,
		MetodoPago:        s.MetodoPago,
		Detalles:          detalles,
		Subtotal:          s.Subtotal,
		Total:             s.Total,
		Estado:            s.Estado,
		MotivoCancelacion: s.MotivoCancelacion,
		Domiciliario:      dom,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
