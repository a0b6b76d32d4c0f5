package middleware

import (
	"testing"

	"dochouse/models"
	"dochouse/utils"
)

func TestAuthorize(t *testing.T) {
	admin := &utils.AuthClaims{Subject: "u1", Email: "a@x.com", Role: models.RoleAdmin}
	patient := &utils.AuthClaims{Subject: "u2", Email: "b@x.com"}

	if !Authorize(admin, models.RoleAdmin) {
		t.Fatalf("admin must pass the admin gate")
	}
	if Authorize(patient, models.RoleAdmin) {
		t.Fatalf("patient must not pass the admin gate")
	}
	if Authorize(nil, models.RoleAdmin) {
		t.Fatalf("missing claims must not pass the admin gate")
	}
	if !Authorize(nil, "") {
		t.Fatalf("empty required role allows everyone")
	}
	if !Authorize(patient, "") {
		t.Fatalf("empty required role allows everyone")
	}
}
