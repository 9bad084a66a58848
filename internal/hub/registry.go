package hub

import "samwad/backend/internal/models"

// Registry maps live connections to registered identities. It also
// tracks which connection, if any, currently holds the official role.
// All access happens from the hub's run goroutine.
type Registry struct {
	identities map[string]*models.Identity
	official   string // conn ID of the active official, "" when none
}

func NewRegistry() *Registry {
	return &Registry{identities: make(map[string]*models.Identity)}
}

// Register binds a profile to a connection, overwriting any prior
// binding for that connection. An official registration silently
// displaces the previous active official: the system assumes a single
// official at a time.
func (r *Registry) Register(identity *models.Identity) {
	r.identities[identity.ConnID] = identity
	if identity.Role == models.RoleOfficial {
		r.official = identity.ConnID
	}
}

// Lookup returns the identity bound to a connection.
func (r *Registry) Lookup(connID string) (*models.Identity, bool) {
	id, ok := r.identities[connID]
	return id, ok
}

// Unregister removes the binding and reports whether the removed
// connection was the active official.
func (r *Registry) Unregister(connID string) (wasOfficial bool) {
	delete(r.identities, connID)
	if r.official == connID {
		r.official = ""
		return true
	}
	return false
}

// OfficialConnID returns the active official's connection ID, or "".
func (r *Registry) OfficialConnID() string {
	return r.official
}

// IsOfficial reports whether connID is the active official connection.
func (r *Registry) IsOfficial(connID string) bool {
	return connID != "" && r.official == connID
}

// Role returns the registered role for a connection, or "".
func (r *Registry) Role(connID string) string {
	if id, ok := r.identities[connID]; ok {
		return id.Role
	}
	return ""
}
