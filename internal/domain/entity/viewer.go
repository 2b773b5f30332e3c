package entity

// Viewer identifies the caller for visibility and mutation policy. It is
// threaded explicitly through every account read so the soft-delete rule is
// a parameter, not hidden store behavior.
type Viewer struct {
	ID   string
	Role string
}

// Privileged reports whether the viewer may see soft-deleted records and
// use the admin-only search surface.
func (v Viewer) Privileged() bool {
	return v.Role == RoleAdmin || v.Role == RoleSuperAdmin
}

func (v Viewer) SuperAdmin() bool {
	return v.Role == RoleSuperAdmin
}

// Anonymous is the zero-privilege viewer used on public read paths.
var Anonymous = Viewer{}
