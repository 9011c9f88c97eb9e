package constants

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// AllRoles dipakai validasi kolom users.role. Hak akses fitur TIDAK
// diturunkan dari role ini, tapi dari tabel temple_admin_grants.
var AllRoles = []string{
	RoleUser,
	RoleAdmin,
	RoleSuperAdmin,
}
