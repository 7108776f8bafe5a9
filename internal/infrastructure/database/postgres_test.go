package database

import "testing"

func TestDefaultRolePermissionsAreInCatalog(t *testing.T) {
	catalog := make(map[string]bool, len(defaultPermissions))
	for _, name := range defaultPermissions {
		catalog[name] = true
	}

	for role, perms := range defaultRolePermissions {
		for _, name := range perms {
			if !catalog[name] {
				t.Errorf("role %s grants %q, which is not a seeded permission", role, name)
			}
		}
	}
}

func TestAdminRoleCoversFullCatalog(t *testing.T) {
	granted := make(map[string]bool)
	for _, name := range defaultRolePermissions["admin"] {
		granted[name] = true
	}

	for _, name := range defaultPermissions {
		if !granted[name] {
			t.Errorf("admin role is missing permission %q", name)
		}
	}
}

func TestSeedRoleOrderMatchesRoleMap(t *testing.T) {
	if len(seedRoleOrder) != len(defaultRolePermissions) {
		t.Fatalf("seedRoleOrder has %d roles, defaultRolePermissions has %d",
			len(seedRoleOrder), len(defaultRolePermissions))
	}
	for _, role := range seedRoleOrder {
		if _, ok := defaultRolePermissions[role]; !ok {
			t.Errorf("seedRoleOrder contains %q with no permission mapping", role)
		}
	}
}

func TestStudentRoleIsReadOnly(t *testing.T) {
	perms := defaultRolePermissions["student"]
	if len(perms) != 1 || perms[0] != "view-dashboard" {
		t.Errorf("student role permissions = %v, want only view-dashboard", perms)
	}
}
