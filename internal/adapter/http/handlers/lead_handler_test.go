package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lexintake/internal/adapter/http/handlers/mocks"
	"lexintake/internal/adapter/http/middleware"
	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// sessionAs stands in for the session middleware in handler tests.
func sessionAs(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestLeadHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h := NewLeadHandler(nil)
		r := gin.New()
		r.POST("/v1/leads/estimate", h.Quote)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns range without persisting", func(t *testing.T) {
		h := NewLeadHandler(nil)
		r := gin.New()
		r.POST("/v1/leads/estimate", h.Quote)

		body := `{"estimated_damage":1000,"injury_severity":3,"is_commercial":false}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Low     int64  `json:"low"`
			High    int64  `json:"high"`
			Display string `json:"display"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Display != "$2,400 - $3,600" {
			t.Fatalf("unexpected display %q", resp.Display)
		}
	})
}

func TestLeadHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.Submit)

		form := url.Values{}
		form.Set("first_name", "Jo")
		form.Set("last_name", "Doe")
		// email/phone/city missing
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("multipart submission with attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.NewLeadInput, attachments []usecase.AttachmentInput) (entities.Lead, error) {
				if in.City != "Dallas" || !in.IsCommercial {
					t.Fatalf("unexpected input %+v", in)
				}
				if len(attachments) != 1 || attachments[0].FileName != "report.pdf" {
					t.Fatalf("unexpected attachments %+v", attachments)
				}
				return entities.Lead{ID: "lead-1", City: in.City, EstimateRange: "$4,000 - $6,000"}, nil
			})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("first_name", "Jo")
		mw.WriteField("last_name", "Doe")
		mw.WriteField("email", "jo@x.com")
		mw.WriteField("phone", "555-0101")
		mw.WriteField("city", "Dallas")
		mw.WriteField("is_commercial", "true")
		mw.WriteField("estimated_damage", "500")
		mw.WriteField("injury_severity", "1.5")
		fw, _ := mw.CreateFormFile("attachments", "report.pdf")
		fw.Write([]byte("%PDF-1.4"))
		mw.Close()

		r := gin.New()
		r.POST("/v1/leads", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("upload failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, usecase.ErrAttachmentUpload)

		form := url.Values{}
		form.Set("first_name", "Jo")
		form.Set("last_name", "Doe")
		form.Set("email", "jo@x.com")
		form.Set("phone", "555")
		form.Set("city", "Dallas")
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		r := gin.New()
		r.POST("/v1/leads", h.Submit)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestLeadHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid order_by", func(t *testing.T) {
		h := NewLeadHandler(nil)
		r := gin.New()
		r.GET("/v1/admin/leads", sessionAs(entities.RoleEditor), h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads?order_by=phone", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes view and ordering through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().List(gomock.Any(), entities.ViewArchived, entities.OrderByCity, entities.SortDesc).
			Return([]entities.Lead{{ID: "lead-1", City: "Waco"}}, nil)

		r := gin.New()
		r.GET("/v1/admin/leads", sessionAs(entities.RoleEditor), h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads?view=archived&order_by=city&direction=desc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestLeadHandler_ArchiveDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("archive success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Archive(gomock.Any(), entities.RoleEditor, "lead-1").
			Return(entities.Lead{ID: "lead-1", IsArchived: true}, nil)

		r := gin.New()
		r.PATCH("/v1/admin/leads/:id/archive", sessionAs(entities.RoleEditor), h.Archive)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/lead-1/archive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("stale id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Unarchive(gomock.Any(), entities.RoleEditor, "gone").
			Return(entities.Lead{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.PATCH("/v1/admin/leads/:id/unarchive", sessionAs(entities.RoleEditor), h.Unarchive)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/gone/unarchive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("editor delete maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), entities.RoleEditor, "lead-1").Return(usecase.ErrForbidden)

		r := gin.New()
		r.DELETE("/v1/admin/leads/:id", sessionAs(entities.RoleEditor), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin delete returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), entities.RoleAdmin, "lead-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/admin/leads/:id", sessionAs(entities.RoleAdmin), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("missing session maps to 401", func(t *testing.T) {
		h := NewLeadHandler(nil)
		r := gin.New()
		r.DELETE("/v1/admin/leads/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestLeadHandler_PurgeArchived(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing archived maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().PurgeArchived(gomock.Any(), entities.RoleAdmin).Return(0, usecase.ErrNoArchivedLeads)

		r := gin.New()
		r.DELETE("/v1/admin/archived-leads", sessionAs(entities.RoleAdmin), h.PurgeArchived)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/archived-leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reports purge count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().PurgeArchived(gomock.Any(), entities.RoleAdmin).Return(3, nil)

		r := gin.New()
		r.DELETE("/v1/admin/archived-leads", sessionAs(entities.RoleAdmin), h.PurgeArchived)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/archived-leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Purged int `json:"purged"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Purged != 3 {
			t.Fatalf("expected 3 purged, got %d", resp.Purged)
		}
	})
}
