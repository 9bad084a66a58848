package models

// Participant roles. Exactly one connection may hold the official role
// as active at any time; registering a second official displaces the first.
const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"
)

// Identity is the profile bound to one live connection for its lifetime.
// It is never persisted on its own: a reconnecting client re-registers
// and gets a fresh connection ID. The durable identity key for citizens
// is the mobile number; for the official it is the role slot itself.
type Identity struct {
	ConnID   string `json:"connectionId"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
	District string `json:"district,omitempty"`
	Block    string `json:"block,omitempty"`
	Village  string `json:"village,omitempty"`
	Email    string `json:"email,omitempty"`
}
