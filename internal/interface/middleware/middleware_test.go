package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/quickchance/quickchance-backend/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != incoming || w.Header().Get(RequestIDHeader) != incoming {
		t.Fatalf("request id = %q, header = %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if _, err := uuid.Parse(w.Body.String()); err != nil || w.Body.String() == "not a uuid" {
		t.Fatalf("malformed header should be replaced, got %q", w.Body.String())
	}
}

func TestRealIPPriority(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	cases := []struct {
		headers map[string]string
		want    string
	}{
		{map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, "1.1.1.1"},
		{map[string]string{"X-Forwarded-For": " 2.2.2.2 , 3.3.3.3"}, "2.2.2.2"},
		{map[string]string{"X-Forwarded-For": "garbage", "X-Real-IP": "4.4.4.4"}, "4.4.4.4"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != tc.want {
			t.Errorf("headers %v: real ip = %q, want %q", tc.headers, w.Body.String(), tc.want)
		}
	}
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret")
	r := gin.New()
	r.Use(Auth(jwt))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("userID")+"/"+c.GetString("role")) })

	token, _, err := jwt.GenerateToken("u1", "youth")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Token " + token, http.StatusUnauthorized},
		{"Bearer nope", http.StatusUnauthorized},
		{"Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Errorf("Authorization %q: status = %d, want %d", tc.header, w.Code, tc.status)
		}
		if tc.status == http.StatusOK && w.Body.String() != "u1/youth" {
			t.Errorf("claims not set: %q", w.Body.String())
		}
	}
}

func TestAccessLogLevels(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Level != logrus.InfoLevel || entries[1].Level != logrus.ErrorLevel {
		t.Fatalf("levels = %v, %v", entries[0].Level, entries[1].Level)
	}
	if entries[1].Data["path"] != "/boom" || entries[1].Data["status"] != http.StatusInternalServerError {
		t.Fatalf("fields = %v", entries[1].Data)
	}
	if entries[0].Data["request_id"] == "" {
		t.Fatalf("request_id missing")
	}
}
