package authz

import (
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
)

// Identity es el resultado de resolver un token contra un usuario vivo.
// Es la única fuente de verdad para autorización: los handlers nunca confían
// en identidad declarada por el cliente en el body.
type Identity struct {
	UserID    string
	Username  string
	RoleName  string
	Rank      int
	CompanyID *string
	BranchID  *string
}

// IsGlobalAdmin informa si la identidad tiene privilegio global.
func (id Identity) IsGlobalAdmin() bool {
	return id.Rank >= entity.RankGlobalAdmin
}

// IsAdmin informa si la identidad puede administrar recursos (global o company admin).
func (id Identity) IsAdmin() bool {
	return id.Rank >= entity.RankCompanyAdmin
}

// SameCompany informa si un company_id pertenece al tenant de la identidad.
func (id Identity) SameCompany(companyID *string) bool {
	return id.CompanyID != nil && companyID != nil && *id.CompanyID == *companyID
}

// Action clase de operación sobre un recurso.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Resource tipo de recurso protegido.
type Resource int

const (
	ResourceUser Resource = iota
	ResourceCompany
	ResourceBranch
	ResourceProduct
)

// Target resumen del recurso objetivo de la operación.
// Para recursos user, UserID y Rank describen al usuario afectado
// (Rank es el del rol actual o el del rol que se intenta asignar, el mayor de ambos).
type Target struct {
	Resource  Resource
	CompanyID *string
	UserID    string
	Rank      int
}

// UserTarget construye el target para operar sobre un usuario.
func UserTarget(userID string, companyID *string, rank int) Target {
	return Target{Resource: ResourceUser, UserID: userID, CompanyID: companyID, Rank: rank}
}

// CompanyTarget construye el target para operar sobre una empresa.
func CompanyTarget(companyID string) Target {
	return Target{Resource: ResourceCompany, CompanyID: &companyID}
}

// BranchTarget construye el target para operar sobre una sucursal (vía su empresa dueña).
func BranchTarget(companyID string) Target {
	return Target{Resource: ResourceBranch, CompanyID: &companyID}
}

// ProductTarget construye el target para operar sobre un producto.
func ProductTarget(companyID string) Target {
	return Target{Resource: ResourceProduct, CompanyID: &companyID}
}

// Authorize decide ADMIT (nil) o DENY (domain.ErrForbidden) para la tripleta
// (identidad, acción, objetivo). Todas las reglas de permisos del sistema viven aquí;
// los use cases la invocan antes de tocar datos.
//
// Reglas:
//  1. Auto-acceso: un usuario siempre puede leer y actualizar su propio registro.
//  2. global_admin: sin restricciones.
//  3. company_admin: limitado a su empresa; no puede afectar identidades de rango >= al suyo.
//  4. Otros roles: solo lectura de recursos de catálogo de su propia empresa.
func Authorize(id Identity, action Action, t Target) error {
	// Regla 1: auto-acceso, independiente del rol.
	if t.Resource == ResourceUser && t.UserID != "" && t.UserID == id.UserID {
		if action == ActionRead || action == ActionUpdate {
			return nil
		}
		// Un usuario no puede eliminarse a sí mismo por esta vía.
		return domain.ErrForbidden
	}

	// Regla 2: global_admin actúa sobre cualquier entidad de cualquier tenant.
	if id.IsGlobalAdmin() {
		return nil
	}

	switch t.Resource {
	case ResourceUser:
		return authorizeUser(id, action, t)
	case ResourceCompany:
		return authorizeCompany(id, action, t)
	case ResourceBranch:
		return authorizeBranch(id, action, t)
	case ResourceProduct:
		return authorizeProduct(id, action, t)
	}
	return domain.ErrForbidden
}

// authorizeUser: gestión de usuarios requiere company_admin dentro de su tenant
// y rango estrictamente mayor al del usuario afectado.
func authorizeUser(id Identity, action Action, t Target) error {
	if !id.IsAdmin() || id.CompanyID == nil {
		return domain.ErrForbidden
	}
	if !id.SameCompany(t.CompanyID) {
		return domain.ErrForbidden
	}
	if action != ActionRead && t.Rank >= id.Rank {
		// No puede crear/modificar/eliminar pares ni superiores, ni elevar a su rango.
		return domain.ErrForbidden
	}
	return nil
}

// authorizeCompany: crear y eliminar empresas es exclusivo de global_admin;
// company_admin puede modificar la suya; cualquier miembro puede leerla.
func authorizeCompany(id Identity, action Action, t Target) error {
	switch action {
	case ActionRead:
		if id.SameCompany(t.CompanyID) {
			return nil
		}
	case ActionUpdate:
		if id.Rank >= entity.RankCompanyAdmin && id.SameCompany(t.CompanyID) {
			return nil
		}
	}
	return domain.ErrForbidden
}

// authorizeBranch: crear y eliminar sucursales es exclusivo de global_admin;
// company_admin modifica sucursales de su empresa; miembros las leen.
func authorizeBranch(id Identity, action Action, t Target) error {
	switch action {
	case ActionRead:
		if id.SameCompany(t.CompanyID) {
			return nil
		}
	case ActionUpdate:
		if id.Rank >= entity.RankCompanyAdmin && id.SameCompany(t.CompanyID) {
			return nil
		}
	}
	return domain.ErrForbidden
}

// authorizeProduct: cualquier miembro lee el catálogo de su empresa;
// las mutaciones requieren company_admin del mismo tenant.
func authorizeProduct(id Identity, action Action, t Target) error {
	if !id.SameCompany(t.CompanyID) {
		return domain.ErrForbidden
	}
	if action == ActionRead {
		return nil
	}
	if id.Rank >= entity.RankCompanyAdmin {
		return nil
	}
	return domain.ErrForbidden
}

// EffectiveCompany resuelve el tenant efectivo para una creación o edición.
// global_admin usa el company_id solicitado tal cual (puede ser nil).
// company_admin: si el cliente no manda company_id se fuerza el suyo;
// si manda uno distinto, DENY. Otros roles no crean recursos administrados.
func EffectiveCompany(id Identity, requested *string) (*string, error) {
	if id.IsGlobalAdmin() {
		return requested, nil
	}
	if id.Rank >= entity.RankCompanyAdmin {
		if id.CompanyID == nil {
			return nil, domain.ErrForbidden
		}
		if requested == nil || *requested == *id.CompanyID {
			return id.CompanyID, nil
		}
		return nil, domain.ErrForbidden
	}
	return nil, domain.ErrForbidden
}

// ListScope calcula el filtro de empresa obligatorio para listados.
// global_admin conserva el filtro solicitado (nil = todo el sistema).
// Los demás roles reciben su propia empresa, ignorando en silencio cualquier
// filtro en conflicto enviado por el cliente. Un admin de empresa sin empresa
// asignada no tiene scope válido.
func ListScope(id Identity, requested *string) (*string, error) {
	if id.IsGlobalAdmin() {
		return requested, nil
	}
	if id.CompanyID == nil {
		return nil, domain.ErrForbidden
	}
	return id.CompanyID, nil
}
