package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies maps each role to the (resource, action) pairs it may perform.
// Ownership rules (only the owner may edit a report) are enforced in the
// services, not here.
var policies = [][]string{
	{RoleSales, ResourceReport, ActionRead},
	{RoleSales, ResourceReport, ActionCreate},
	{RoleSales, ResourceReport, ActionUpdate},
	{RoleSales, ResourceReport, ActionDelete},
	{RoleSales, ResourceComment, ActionRead},
	{RoleSales, ResourceCustomer, ActionRead},

	{RoleManager, ResourceReport, ActionRead},
	{RoleManager, ResourceReport, ActionCreate},
	{RoleManager, ResourceReport, ActionUpdate},
	{RoleManager, ResourceReport, ActionDelete},
	{RoleManager, ResourceComment, ActionRead},
	{RoleManager, ResourceComment, ActionCreate},
	{RoleManager, ResourceCustomer, ActionRead},
	{RoleManager, ResourceCustomer, ActionWrite},
	{RoleManager, ResourceSalesPerson, ActionManage},
}

// NewEnforcer builds the enforcer from the embedded model and policy table
// so no external files are needed at runtime.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
