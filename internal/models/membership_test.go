package models

import "testing"

func TestGroupRoleLabels(t *testing.T) {
	seen := make(map[string]GroupRole)
	for _, r := range AllGroupRoles {
		label := r.Label()
		if label == "" {
			t.Errorf("role %s has no label", r)
		}
		if prev, ok := seen[label]; ok {
			t.Errorf("roles %s and %s share label %q", prev, r, label)
		}
		seen[label] = r
	}
}

func TestGroupRolePredicates(t *testing.T) {
	tests := []struct {
		role     GroupRole
		member   bool
		operator bool
		leader   bool
	}{
		{RolePending, false, false, false},
		{RoleMember, true, false, false},
		{RoleAdmin, true, true, false},
		{RoleLeader, true, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsMember(); got != tt.member {
				t.Errorf("IsMember() = %v, want %v", got, tt.member)
			}
			if got := tt.role.IsOperator(); got != tt.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tt.operator)
			}
			if got := tt.role.IsLeader(); got != tt.leader {
				t.Errorf("IsLeader() = %v, want %v", got, tt.leader)
			}
		})
	}
}

func TestParseGroupRole(t *testing.T) {
	for _, r := range AllGroupRoles {
		if got, ok := ParseGroupRole(string(r)); !ok || got != r {
			t.Errorf("ParseGroupRole(%q) = %q, %v", r, got, ok)
		}
	}
	if _, ok := ParseGroupRole("OWNER"); ok {
		t.Error("ParseGroupRole accepted an unknown role")
	}
}
