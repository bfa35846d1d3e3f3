package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{ViewerRole, EditorRole, AdminRole} {
		if !r.Valid() {
			t.Errorf("role %q reported invalid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("unknown role reported valid")
	}
}

func TestRoleCanUpload(t *testing.T) {
	if ViewerRole.CanUpload() {
		t.Error("viewer should not be able to upload")
	}
	if !EditorRole.CanUpload() || !AdminRole.CanUpload() {
		t.Error("editor and admin should be able to upload")
	}
}

func TestPrepareCreate(t *testing.T) {
	u := &User{
		Email:    "  New.User@Example.COM ",
		Password: " secret123 ",
	}
	if err := u.PrepareCreate(); err != nil {
		t.Fatalf("PrepareCreate: %v", err)
	}
	if u.Email != "new.user@example.com" {
		t.Errorf("email = %q, want normalized lowercase", u.Email)
	}
	if u.Role != ViewerRole {
		t.Errorf("default role = %q, want %q", u.Role, ViewerRole)
	}
	if !u.IsActive {
		t.Error("new user should be active")
	}
	if u.Password == "secret123" || u.Password == " secret123 " {
		t.Error("password was not hashed")
	}
	if err := u.ComparePassword("secret123"); err != nil {
		t.Errorf("ComparePassword with original password: %v", err)
	}
	if err := u.ComparePassword("wrong"); err == nil {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestPrepareCreateRejectsUnknownRole(t *testing.T) {
	u := &User{Email: "a@b.c", Password: "secret123", Role: "superuser"}
	if err := u.PrepareCreate(); err == nil {
		t.Error("unknown role was accepted")
	}
}
