package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleCliente       = "Cliente"
)

// Estados válidos para User.
const (
	UserStatusActivo   = "Activo"
	UserStatusInactivo = "Inactivo"
)

// Tipos de documento aceptados (Colombia).
const (
	DocCC  = "CC"  // cédula de ciudadanía
	DocCE  = "CE"  // cédula de extranjería
	DocTI  = "TI"  // tarjeta de identidad
	DocPAS = "PAS" // pasaporte
)

// User representa un usuario de la tienda (cliente o administrador del back-office).
// El administrador es un registro sembrado en el primer arranque, nunca una ruta de código aparte.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"` // único, en minúsculas
	Nombres         string    `json:"nombres"`
	Apellidos       string    `json:"apellidos"`
	TipoDocumento   string    `json:"tipoDocumento"`
	NumeroDocumento string    `json:"numeroDocumento"` // único
	Telefono        string    `json:"telefono"`
	PasswordHash    string    `json:"passwordHash"` // bcrypt, nunca texto plano
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	Seed            bool      `json:"seed"` // true para el admin sembrado; no eliminable
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
