package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexintake/internal/adapter/http/handlers/mocks"
	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfileHandler_ListUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("editor maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().List(gomock.Any(), entities.RoleEditor).Return(nil, usecase.ErrForbidden)

		r := gin.New()
		r.GET("/v1/admin/users", sessionAs(entities.RoleEditor), h.ListUsers)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("never exposes password hashes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().List(gomock.Any(), entities.RoleAdmin).Return([]entities.Profile{
			{ID: "p-1", Email: "staff@firm.com", Role: entities.RoleEditor, PasswordHash: "$2a$10$secret"},
		}, nil)

		r := gin.New()
		r.GET("/v1/admin/users", sessionAs(entities.RoleAdmin), h.ListUsers)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("secret")) {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
	})
}

func TestProfileHandler_UpdateRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", sessionAs(entities.RoleAdmin), h.UpdateRole)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/p-1/role", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("promotes editor to admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().UpdateRole(gomock.Any(), entities.RoleAdmin, "p-1", entities.RoleAdmin).
			Return(entities.Profile{ID: "p-1", Email: "staff@firm.com", Role: entities.RoleAdmin}, nil)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", sessionAs(entities.RoleAdmin), h.UpdateRole)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/p-1/role", bytes.NewBufferString(`{"role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Role string `json:"role"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Role != "admin" {
			t.Fatalf("expected role admin, got %q", resp.Role)
		}
	})

	t.Run("unknown profile maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().UpdateRole(gomock.Any(), entities.RoleAdmin, "gone", entities.RoleEditor).
			Return(entities.Profile{}, usecase.ErrProfileNotFound)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", sessionAs(entities.RoleAdmin), h.UpdateRole)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/gone/role", bytes.NewBufferString(`{"role":"editor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProfileHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().Provision(gomock.Any(), entities.RoleAdmin, "staff@firm.com", "hunter2hunter2", entities.RoleEditor).
			Return(entities.Profile{}, usecase.ErrEmailTaken)

		r := gin.New()
		r.POST("/v1/admin/users", sessionAs(entities.RoleAdmin), h.CreateUser)

		body := `{"email":"staff@firm.com","password":"hunter2hunter2","role":"editor"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provisions a new editor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().Provision(gomock.Any(), entities.RoleAdmin, "new@firm.com", "hunter2hunter2", entities.RoleEditor).
			Return(entities.Profile{ID: "p-2", Email: "new@firm.com", Role: entities.RoleEditor}, nil)

		r := gin.New()
		r.POST("/v1/admin/users", sessionAs(entities.RoleAdmin), h.CreateUser)

		body := `{"email":"new@firm.com","password":"hunter2hunter2","role":"editor"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}
