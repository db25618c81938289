package rbac_test

import (
	"testing"

	"go-ponto/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce_AdminHasFullAccess(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	for _, req := range []rbac.EnforceRequest{
		{Role: "ADMIN", Resource: "payroll", Action: "approve"},
		{Role: "ADMIN", Resource: "employee", Action: "delete"},
		{Role: "ADMIN", Resource: "settings", Action: "update"},
		{Role: "ADMIN", Resource: "timeclock", Action: "read_all"},
	} {
		allowed, err := svc.Enforce(req)
		assert.NoError(t, err)
		assert.True(t, allowed, "expected ADMIN to be allowed %s:%s", req.Resource, req.Action)
	}
}

func TestEnforce_EmployeePermissions(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	tests := []struct {
		resource string
		action   string
		allowed  bool
	}{
		{"timeclock", "create", true},
		{"timeclock", "read", true},
		{"timeclock", "read_all", false},
		{"justification", "create", true},
		{"justification", "approve", false},
		{"timebank", "read", true},
		{"timebank", "read_all", false},
		{"payslip", "read", true},
		{"payroll", "read", true},
		{"payroll", "create", false},
		{"payroll", "approve", false},
		{"employee", "create", false},
		{"settings", "update", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(rbac.EnforceRequest{Role: "EMPLOYEE", Resource: tt.resource, Action: tt.action})
		assert.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "EMPLOYEE %s:%s", tt.resource, tt.action)
	}
}

func TestEnforce_UnknownRoleDenied(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	allowed, err := svc.Enforce(rbac.EnforceRequest{Role: "CONTRACTOR", Resource: "timeclock", Action: "read"})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
