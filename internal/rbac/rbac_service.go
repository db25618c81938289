package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// EnforceRequest asks whether a role may perform an action on a resource.
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

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// rolePolicies is the fixed permission table. Subjects are the roles
// carried in the JWT, not individual employees.
var rolePolicies = [][]string{
	{"ADMIN", "*", "*"},

	{"EMPLOYEE", "timeclock", "create"},
	{"EMPLOYEE", "timeclock", "read"},
	{"EMPLOYEE", "justification", "create"},
	{"EMPLOYEE", "justification", "read"},
	{"EMPLOYEE", "timebank", "read"},
	{"EMPLOYEE", "payslip", "read"},
	{"EMPLOYEE", "payroll", "read"},
	{"EMPLOYEE", "servicereport", "create"},
	{"EMPLOYEE", "servicereport", "read"},
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
