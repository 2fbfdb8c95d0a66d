package authz

import (
	"github.com/casbin/casbin/v2"
)

const (
	RoleManager = "manager"
	RoleSales   = "sales"

	ResourceReport      = "report"
	ResourceComment     = "comment"
	ResourceCustomer    = "customer"
	ResourceSalesPerson = "salesperson"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionWrite  = "write"
	ActionManage = "manage"
)

// RoleFor maps the token's manager flag to a policy role.
func RoleFor(isManager bool) string {
	if isManager {
		return RoleManager
	}
	return RoleSales
}

//go:generate mockgen -source=authz.go -destination=mock/authz_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}

// CanReadReport: the owner and any manager may read a report.
func CanReadReport(isManager bool, actorID, ownerID uint) bool {
	return isManager || actorID == ownerID
}

// CanModifyReport: only the owner may update or delete a report,
// managers included.
func CanModifyReport(actorID, ownerID uint) bool {
	return actorID == ownerID
}
