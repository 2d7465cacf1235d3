package dto

import "time"

// RegisterRequest entrada para registro de un cliente (auth).
// El rol siempre queda forzado a Cliente, se envíe lo que se envíe.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Nombres         string `json:"nombres" validate:"required,min=1,max=100"`
	Apellidos       string `json:"apellidos" validate:"required,min=1,max=100"`
	TipoDocumento   string `json:"tipoDocumento" validate:"required,oneof=CC CE TI PAS"`
	NumeroDocumento string `json:"numeroDocumento" validate:"required,min=4,max=20"`
	Telefono        string `json:"telefono" validate:"required,min=7,max=15"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario desde el back-office.
type CreateUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Nombres         string `json:"nombres" validate:"required,min=1,max=100"`
	Apellidos       string `json:"apellidos" validate:"required,min=1,max=100"`
	TipoDocumento   string `json:"tipoDocumento" validate:"required,oneof=CC CE TI PAS"`
	NumeroDocumento string `json:"numeroDocumento" validate:"required,min=4,max=20"`
	Telefono        string `json:"telefono" validate:"required,min=7,max=15"`
	Role            string `json:"role" validate:"omitempty,oneof=Administrador Cliente"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Nombres   *string `json:"nombres" validate:"omitempty,min=1,max=100"`
	Apellidos *string `json:"apellidos" validate:"omitempty,min=1,max=100"`
	Telefono  *string `json:"telefono" validate:"omitempty,min=7,max=15"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	Status    *string `json:"status" validate:"omitempty,oneof=Activo Inactivo"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Nombres         string    `json:"nombres"`
	Apellidos       string    `json:"apellidos"`
	TipoDocumento   string    `json:"tipoDocumento"`
	NumeroDocumento string    `json:"numeroDocumento"`
	Telefono        string    `json:"telefono"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
