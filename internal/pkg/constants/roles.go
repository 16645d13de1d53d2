package constants

// Role names, one per user_roles row.
const (
	SuperAdmin = "super_admin"
	Editor     = "editor"
	Manager    = "manager"
	RoleNone   = "none"
)

// Permissions gate admin mutations server-side.
const (
	ViewDashboard       = "view_dashboard"
	ViewDonations       = "view_donations"
	ManageVolunteers    = "manage_volunteers"
	ManageMessages      = "manage_messages"
	ManageBlogs         = "manage_blogs"
	ManageAnnouncements = "manage_announcements"
	ManagePrograms      = "manage_programs"
	ManageInternships   = "manage_internships"
	ManageUsers         = "manage_users"
	ManageImpact        = "manage_impact"
	UploadContent       = "upload_content"
)

// PermissionRoles maps each permission to roles allowed to perform it.
var PermissionRoles = map[string][]string{
	ViewDashboard:       {Editor, Manager, SuperAdmin},
	ViewDonations:       {Manager, SuperAdmin},
	ManageVolunteers:    {Manager, SuperAdmin},
	ManageMessages:      {SuperAdmin},
	ManageBlogs:         {Editor, SuperAdmin},
	ManageAnnouncements: {Editor, SuperAdmin},
	ManagePrograms:      {Manager, SuperAdmin},
	ManageInternships:   {Manager, SuperAdmin},
	ManageUsers:         {SuperAdmin},
	ManageImpact:        {SuperAdmin},
	UploadContent:       {Editor, Manager, SuperAdmin},
}

// AllowedRole returns true if role is in the list of allowed roles for the
// permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Admin SPA routes each non-super role may render. super_admin gets
// everything, unknown roles get nothing.
var editorRoutes = []string{
	"/admin/blogs",
	"/admin/announcements",
	"/admin/dashboard",
}

var managerRoutes = []string{
	"/admin/programs",
	"/admin/internships",
	"/admin/volunteers",
	"/admin/donations",
	"/admin/dashboard",
}

// CanAccess decides whether a role may open an admin route. Pure function over
// the two static allow-lists; the SPA uses it to hide menu items while the
// permission middleware enforces the same table on the API.
func CanAccess(route, role string) bool {
	if role == SuperAdmin {
		return true
	}
	var routes []string
	switch role {
	case Editor:
		routes = editorRoutes
	case Manager:
		routes = managerRoutes
	default:
		return false
	}
	for _, r := range routes {
		if r == route {
			return true
		}
	}
	return false
}
