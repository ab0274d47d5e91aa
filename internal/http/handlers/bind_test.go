package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regdesk/regdesk/internal/http/handlers"
)

type bindTarget struct {
	Type  string `json:"type" binding:"required,oneof=attendee business"`
	Email string `json:"email" binding:"required,email"`
}

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/t", func(ctx *gin.Context) {
		var req bindTarget
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.JSON(http.StatusOK, req)
	})
	return r
}

func postRaw(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/t", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBindJSONValid(t *testing.T) {
	w := postRaw(t, bindRouter(), `{"type":"attendee","email":"a@b.com"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBindJSONValidatorErrorsUseJSONNames(t *testing.T) {
	w := postRaw(t, bindRouter(), `{"type":"supplier"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Fields []handlers.FieldError `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Error.Code != "invalid_request" {
		t.Fatalf("code %s", resp.Error.Code)
	}

	byField := map[string]handlers.FieldError{}
	for _, fe := range resp.Error.Details.Fields {
		byField[fe.Field] = fe
	}

	if fe, ok := byField["type"]; !ok || fe.Rule != "oneof" {
		t.Fatalf("expected oneof failure on type, got %+v", byField)
	}
	if fe, ok := byField["email"]; !ok || fe.Rule != "required" {
		t.Fatalf("expected required failure on email, got %+v", byField)
	}
}

func TestBindJSONSyntaxError(t *testing.T) {
	w := postRaw(t, bindRouter(), `{"type":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_json_syntax") {
		t.Fatalf("expected syntax marker, got %s", w.Body.String())
	}
}

func TestBindJSONTypeMismatch(t *testing.T) {
	w := postRaw(t, bindRouter(), `{"type":42,"email":"a@b.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_json_type") {
		t.Fatalf("expected type marker, got %s", w.Body.String())
	}
}
