package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestAccountHandler_Register(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/register", `{"username":"alice","password":"secret","role":"client"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp messageResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "registration successful" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAccountHandler_Register_Duplicate(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")

	rec := ts.request(http.MethodPost, "/register", `{"username":"alice","password":"other","role":"client"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp errorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != "user already registered" {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

func TestAccountHandler_Register_Validation(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"alice"}`},
		{"missing username", `{"password":"secret"}`},
		{"malformed json", `{"username":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.request(http.MethodPost, "/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")

	rec := ts.request(http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp messageResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "login successful" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAccountHandler_Login_BadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")

	for _, body := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"ghost","password":"secret"}`,
	} {
		rec := ts.request(http.MethodPost, "/login", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("body %s: want 401, got %d: %s", body, rec.Code, rec.Body.String())
		}
	}
}

func TestAccountHandler_Deactivate(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "root", "pw", "admin")
	ts.seedUser(t, "alice", "secret", "client")

	rec := ts.request(http.MethodPost, "/deactivate", `{"current_user":"root","username":"alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "user deactivated") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestAccountHandler_Deactivate_Forbidden(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "secret", "client")
	ts.seedUser(t, "bob", "pw", "client")

	rec := ts.request(http.MethodPost, "/deactivate", `{"current_user":"alice","username":"bob"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccountHandler_Deactivate_TargetNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "root", "pw", "admin")

	rec := ts.request(http.MethodPost, "/deactivate", `{"current_user":"root","username":"ghost"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
