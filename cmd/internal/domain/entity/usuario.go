package entity

// Role values carried by panel accounts. Free-form in the store, these
// are the two the platform issues.
const (
	RoleAdmin     = "admin"
	RoleProveedor = "proveedor"
)

// Usuario is a panel account. Username is a derived duplicate of Email
// and exists only for display; login always resolves by email.
//
// Non-superuser accounts are bound to exactly one Proveedor, which is
// what the ownership resolver scopes every query by. Superusers are
// never bound.
type Usuario struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"not null;uniqueIndex" json:"username"`
	Email       string `gorm:"not null;uniqueIndex" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	ProveedorID *int64 `gorm:"index" json:"proveedor_id,omitempty"` // References: proveedors(id)
	Role        string `gorm:"not null" json:"role"`
	IsSuperuser bool   `gorm:"not null;default:false" json:"is_superuser"`
	Activo      bool   `gorm:"not null;default:true" json:"activo"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"`

	// Relationships
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID;references:ID" json:"proveedor,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }
