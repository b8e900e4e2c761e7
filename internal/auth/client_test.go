package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestLoginNormalizesAccessToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["username"] != "emilys" {
			t.Errorf("username = %v, want emilys", body["username"])
		}
		if body["expiresInMins"] != float64(30) {
			t.Errorf("expiresInMins = %v, want 30", body["expiresInMins"])
		}
		_, _ = w.Write([]byte(`{"id":1,"username":"emilys","email":"emily@x.com","firstName":"Emily","lastName":"Johnson","gender":"female","accessToken":"jwt-here"}`))
	}))

	user, err := client.Login(context.Background(), Credentials{Username: " emilys ", Password: "emilyspass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Token != "jwt-here" {
		t.Fatalf("Token = %q, want accessToken normalized to jwt-here", user.Token)
	}
	if user.FullName() != "Emily Johnson" {
		t.Fatalf("FullName = %q, want Emily Johnson", user.FullName())
	}
}

func TestLoginLegacyTokenField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"username":"emilys","token":"legacy-token"}`))
	}))

	user, err := client.Login(context.Background(), Credentials{Username: "emilys", Password: "emilyspass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Token != "legacy-token" {
		t.Fatalf("Token = %q, want legacy-token", user.Token)
	}
}

func TestLoginRejectionSurfacesServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))

	user, err := client.Login(context.Background(), Credentials{Username: "nobody", Password: "wrongpass"})
	if user != nil {
		t.Fatalf("user = %#v, want nil on rejection", user)
	}
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("err = %v, want server-provided message", err)
	}
}

func TestLoginRejectionWithoutBodyUsesGenericMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), Credentials{Username: "nobody", Password: "wrongpass"})
	if err == nil || err.Error() != genericLoginError {
		t.Fatalf("err = %v, want %q", err, genericLoginError)
	}
}

func TestLoginTransportFailureIsGenericNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(srv.URL, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	srv.Close() // connection refused from here on

	_, err = client.Login(context.Background(), Credentials{Username: "emilys", Password: "emilyspass"})
	if err == nil || err.Error() != genericNetworkError {
		t.Fatalf("err = %v, want %q", err, genericNetworkError)
	}
}

func TestRegisterSynthesizesStubToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/add" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":101,"username":"newuser","email":"new@x.com","firstName":"New","lastName":"User"}`))
	}))

	user, err := client.Register(context.Background(), Registration{
		FirstName:       "New",
		LastName:        "User",
		Email:           "new@x.com",
		Username:        "newuser",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Token == "" {
		t.Fatal("Register should synthesize a token when the provider omits one")
	}
	if !IsStubToken(user.Token) {
		t.Fatalf("Token = %q, want recognizable stub", user.Token)
	}
}

func TestVerifyTokenRejectsStubs(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	if _, err := client.VerifyToken(context.Background(), NewStubToken()); err == nil {
		t.Fatal("VerifyToken should reject stub tokens")
	}
	if requests != 0 {
		t.Fatalf("stub verification issued %d requests, want 0", requests)
	}
}

func TestVerifyTokenSendsBearer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer real-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"username":"emilys"}`))
	}))

	user, err := client.VerifyToken(context.Background(), "real-token")
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if user.Username != "emilys" {
		t.Fatalf("Username = %q, want emilys", user.Username)
	}
}
