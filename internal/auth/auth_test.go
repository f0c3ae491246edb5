package auth

import (
	"testing"
	"time"

	"github.com/bodhi-os/bodhi/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:   "u1",
		Name: "Bodhi",
		Role: models.RoleMe,
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword(hash, "hunter2"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestMintAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Mint(testUser(), time.Now())
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	session, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if session.UserID != "u1" || session.Name != "Bodhi" || session.Role != models.RoleMe {
		t.Errorf("session = %+v", session)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret")

	// Minted far enough in the past that the TTL has elapsed.
	token, err := m.Mint(testUser(), time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Mint(testUser(), time.Now())
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if _, err := NewManager("secret-b").Verify(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")
	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("garbage token %q accepted", tok)
		}
	}
}
