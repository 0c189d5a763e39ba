package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/api"
	"github.com/xy-planning-network/jobtracker/ranger"
)

func newBackend(t *testing.T, logoutStatus int) *httptest.Server {
	t.Helper()

	apps := map[string]api.Application{}
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in api.LoginRequest
		json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"status": 401, "error": "Invalid email or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "ok", Path: "/"})
		json.NewEncoder(w).Encode(api.User{ID: 1, Email: in.Email, UserName: "ada"})
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(logoutStatus)
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.User{ID: 1, Email: "ada@example.com", UserName: "ada"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var in api.RegisterRequest
		json.NewDecoder(r.Body).Decode(&in)
		json.NewEncoder(w).Encode(api.User{ID: 2, Email: in.Email, UserName: in.UserName})
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/applications", func(w http.ResponseWriter, r *http.Request) {
		var app api.Application
		json.NewDecoder(r.Body).Decode(&app)
		if app.CompanyName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"status": 400, "errors": map[string]string{"companyName": "Company name is required"}})
			return
		}
		app.ID = 1
		apps["1"] = app
		json.NewEncoder(w).Encode(app)
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/applications/{id}", func(w http.ResponseWriter, r *http.Request) {
		app, ok := apps[mux.Vars(r)["id"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"status": 404, "error": "Application not found"})
			return
		}
		json.NewEncoder(w).Encode(app)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/applications/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if _, ok := apps[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"status": 404, "error": "Application not found"})
			return
		}

		var app api.Application
		json.NewDecoder(r.Body).Decode(&app)
		if app.CompanyName == "" || app.JobTitle == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"status": 400, "errors": map[string]string{"companyName": "Company name is required"}})
			return
		}
		apps[id] = app
		json.NewEncoder(w).Encode(app)
	}).Methods(http.MethodPut)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, srv *httptest.Server) ranger.Config {
	u, err := url.Parse(srv.URL)
	require.Nil(t, err)

	return ranger.Config{
		APIURL:          u,
		BaseURL:         u,
		Env:             jobtracker.Testing,
		LoginPath:       "/login",
		ShutdownTimeout: time.Second,
	}
}

func TestRun(t *testing.T) {
	srv := newBackend(t, http.StatusNoContent)
	creds := []string{"-email", "ada@example.com", "-password", "hunter2"}

	for _, tc := range []struct {
		name     string
		args     []string
		stdin    string
		contains string
		err      error
	}{
		{"No-Command", nil, "", "", jobtracker.ErrNotValid},
		{"Unknown", append(creds, "nope"), "", "", jobtracker.ErrNotValid},
		{"Statuses", []string{"statuses"}, "", "INTERVIEWING\tInterviewing", nil},
		{"Register", append(creds, "register", "-name", "ada"), "", `"userName": "ada"`, nil},
		{"Bad-Password", []string{"-email", "ada@example.com", "-password", "nope", "get", "1"}, "", "", jobtracker.ErrUnauthorized},
		{"Create", append(creds, "create", "-company", "Acme", "-title", "Engineer"), "", `"companyName": "Acme"`, nil},
		{"Create-File", append(creds, "create", "-file", "-"), `{"companyName":"Initech","jobTitle":"Analyst"}`, `"companyName": "Initech"`, nil},
		{"Create-Invalid", append(creds, "create", "-title", "Engineer"), "", "", jobtracker.ErrNotValid},
		{"Create-Bad-Status", append(creds, "create", "-company", "A", "-title", "B", "-status", "ghosted"), "", "", jobtracker.ErrNotValid},
		{"Get", append(creds, "get", "1"), "", `"id": 1`, nil},
		{"Get-Missing", append(creds, "get", "2"), "", "", jobtracker.ErrNotExist},
		{"Get-No-ID", append(creds, "get"), "", "", jobtracker.ErrMissingData},
		{"Update-Status", append(creds, "update", "1", "-status", "offer"), "", `"status": "OFFER"`, nil},
		{"Update-Keeps-Fields", append(creds, "update", "1", "-notes", "call back"), "", `"jobTitle": "Analyst"`, nil},
		{"Update-Nothing", append(creds, "update", "1"), "", "", jobtracker.ErrMissingData},
		{"Update-Missing", append(creds, "update", "2", "-status", "offer"), "", "", jobtracker.ErrNotExist},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			stdout := new(bytes.Buffer)
			args := append([]string(nil), tc.args...)

			// Act
			err := run(context.Background(), testConfig(t, srv), args, strings.NewReader(tc.stdin), stdout, new(bytes.Buffer))

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.Nil(t, err)
			require.Contains(t, stdout.String(), tc.contains)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"42"})
	require.Nil(t, err)
	require.Equal(t, uint(42), id)

	_, err = parseID([]string{"0"})
	require.ErrorIs(t, err, jobtracker.ErrNotValid)

	_, err = parseID([]string{"x"})
	require.ErrorIs(t, err, jobtracker.ErrNotValid)

	_, err = parseID(nil)
	require.ErrorIs(t, err, jobtracker.ErrMissingData)
}

func TestRunLogoutFailure(t *testing.T) {
	// Arrange
	srv := newBackend(t, http.StatusInternalServerError)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	args := []string{"-email", "ada@example.com", "-password", "hunter2", "-v", "me"}

	// Act
	err := run(context.Background(), testConfig(t, srv), args, strings.NewReader(""), stdout, stderr)

	// Assert
	require.Nil(t, err)
	require.Contains(t, stdout.String(), `"userName": "ada"`)
	require.Contains(t, stderr.String(), "cannot log out")
}
