package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignInReturnsUserAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/signin" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode: %v", err)
		}
		if creds["email"] != "ana@example.com" {
			t.Errorf("email = %q", creds["email"])
		}
		w.Write([]byte(`{"token":"tok","user":{"id":"u1","name":"Ana"}}`))
	}))
	defer srv.Close()

	user, token, err := NewClient(srv.URL).SignIn(context.Background(), "ana@example.com", "pw")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != "u1" || token != "tok" {
		t.Fatalf("user = %+v token = %q", user, token)
	}
}

func TestSignInRejectionIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"credenciais inválidas"}`))
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).SignIn(context.Background(), "a@b.c", "errada")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d", apiErr.Status)
	}
}

func TestSignUpPostsForm(t *testing.T) {
	var got SignUpInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	input := SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "pw", PhoneNumber: "+55", Address: "Rua 1"}
	if err := NewClient(srv.URL).SignUp(context.Background(), input); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if got != input {
		t.Fatalf("payload = %+v, want %+v", got, input)
	}
}
