package bootstrap

import "context"

// AuditLog captures an operationally significant event outside the
// request/response cycle.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
