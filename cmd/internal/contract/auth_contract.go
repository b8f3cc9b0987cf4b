package contract

import "reclamalibro/cmd/internal/domain/entity"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token pair plus a snapshot of who logged
// in, so the panel can route without a second round trip.
type LoginResponse struct {
	Refresh   string            `json:"refresh"`
	Access    string            `json:"access"`
	UserID    int64             `json:"user_id"`
	Username  string            `json:"username"`
	Role      string            `json:"role"`
	Proveedor *entity.Proveedor `json:"proveedor"`
}

type UsuarioResponse struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	Activo    bool              `json:"activo"`
	Proveedor *entity.Proveedor `json:"proveedor"`
	CreatedAt string            `json:"created_at"`
}
