package models

// Audit event types published to the security topic.
const (
	AuditUserRegistered = "user.registered"
	AuditUserLogin      = "user.login"
	AuditUserLogout     = "user.logout"
	AuditAdminCreated   = "admin.created"
	AuditAdminAssigned  = "admin.assigned"
	AuditAdminRevoked   = "admin.revoked"
)

// AuditEvent is the message published to Kafka for security-relevant actions.
type AuditEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	Type      string `json:"type"`      // One of the Audit* constants
	UserID    string `json:"user_id"`   // Affected user id
	Email     string `json:"email"`     // Affected user email
	Timestamp int64  `json:"timestamp"` // Unix timestamp
}
