package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Role policy is static: the back office knows two roles. Admin reviews and
// administers, employees act on their own records.
var policies = [][]string{
	{"admin", "holiday", "create"},
	{"admin", "holiday", "delete"},
	{"admin", "holiday", "read"},
	{"admin", "leave", "read"},
	{"admin", "leave", "review"},
	{"admin", "attendance", "read"},
	{"admin", "payroll", "read"},
	{"admin", "payroll", "generate"},
	{"admin", "deduction", "read"},
	{"admin", "document", "create"},
	{"admin", "document", "read"},
	{"admin", "employee", "create"},
	{"admin", "employee", "read"},
	{"employee", "holiday", "read"},
	{"employee", "leave", "create"},
	{"employee", "leave", "read"},
	{"employee", "attendance", "create"},
	{"employee", "attendance", "read"},
	{"employee", "payroll", "read"},
	{"employee", "document", "read"},
}

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	// Admins inherit everything employees may do.
	if _, err := enforcer.AddGroupingPolicy("admin", "employee"); err != nil {
		return nil, err
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
