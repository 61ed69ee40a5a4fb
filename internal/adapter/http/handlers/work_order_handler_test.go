package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servitec/internal/adapter/http/handlers/mocks"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkOrderUseCase, *mocks.MockIServiceCatalogUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIWorkOrderUseCase(ctrl)
	catalog := mocks.NewMockIServiceCatalogUseCase(ctrl)
	h := NewWorkOrderHandler(orders, catalog)

	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id", h.UpdateOrder)
	r.POST("/v1/orders/:id/technicians", h.AssignTechnician)
	r.DELETE("/v1/orders/:id/technicians/:technician_id", h.RemoveTechnician)
	r.POST("/v1/orders/:id/materials", h.AddExtraMaterial)
	r.DELETE("/v1/orders/:id/materials/:material_id", h.RemoveExtraMaterial)
	r.GET("/v1/technicians", h.ListTechnicians)
	return r, orders, catalog
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWorkOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid service date", func(t *testing.T) {
		r, _, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders", `{"service_date":"pronto"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("resolver failure aborts creation", func(t *testing.T) {
		r, _, catalog := newOrderRouter(t)
		catalog.EXPECT().ResolveService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrUnknownKit)

		payload := `{"customer":{"id":"1","name":"Juan Pérez"},"service_date":"2025-04-02","services":[{"service_type":"cameras","category":"installation","kit_id":"kit-99"}]}`
		w := doJSON(r, http.MethodPost, "/v1/orders", payload)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ledger failure is mapped", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrNoCustomer)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"service_date":"2025-04-02"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success resolves every selection server-side", func(t *testing.T) {
		r, orders, catalog := newOrderRouter(t)

		resolved := entities.Service{ID: "svc-1", ServiceType: "cameras", Category: "installation", KitID: "kit-4", TotalPrice: decimal.RequireFromString("624.92")}
		catalog.EXPECT().ResolveService(gomock.Any(), gomock.Any()).Return(resolved, nil)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "Instalación en oficina").DoAndReturn(
			func(_ any, customer *entities.Customer, serviceDate *time.Time, services []entities.Service, obs string) (entities.WorkOrder, error) {
				if customer == nil || customer.Name != "Juan Pérez" {
					t.Fatalf("unexpected customer: %+v", customer)
				}
				if serviceDate == nil || serviceDate.Format("2006-01-02") != "2025-04-02" {
					t.Fatalf("unexpected date: %v", serviceDate)
				}
				if len(services) != 1 || services[0].ID != "svc-1" {
					t.Fatalf("unexpected services: %+v", services)
				}
				return entities.WorkOrder{
					ID:          "ORD-1",
					Customer:    customer,
					ServiceDate: serviceDate,
					Services:    services,
					Status:      entities.OrderStatusPending,
					TotalAmount: decimal.RequireFromString("624.92"),
				}, nil
			})

		payload := `{"customer":{"id":"1","name":"Juan Pérez"},"service_date":"2025-04-02","initial_observations":"Instalación en oficina","services":[{"service_type":"cameras","category":"installation","kit_id":"kit-4"}]}`
		w := doJSON(r, http.MethodPost, "/v1/orders", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ORD-1" || body["total_amount"] != "624.92" || body["effective_total"] != "624.92" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{{ID: "ORD-1"}, {ID: "ORD-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "ORD-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get unknown order is 404", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().GetByID(gomock.Any(), "ORD-404").Return(entities.WorkOrder{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/ORD-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("technicians", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().Technicians().Return([]entities.Technician{{ID: "t1", Name: "Carlos Méndez", SoloCommission: decimal.NewFromInt(50), GroupCommission: decimal.NewFromInt(30)}})

		w := doJSON(r, http.MethodGet, "/v1/technicians", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body[0]["solo_commission"] != "50.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status value", func(t *testing.T) {
		r, _, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/orders/ORD-1", `{"status":"cancelled"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch is forwarded", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().UpdateOrder(gomock.Any(), "ORD-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch usecase.UpdateOrderPatch) (entities.WorkOrder, error) {
				if patch.Status == nil || *patch.Status != entities.OrderStatusInProgress {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				if patch.ManualTotalAmount == nil || patch.ManualTotalAmount.StringFixed(2) != "500.00" {
					t.Fatalf("unexpected manual total: %+v", patch.ManualTotalAmount)
				}
				manual := *patch.ManualTotalAmount
				return entities.WorkOrder{ID: "ORD-1", Status: *patch.Status, TotalAmount: decimal.RequireFromString("340.00"), ManualTotalAmount: &manual}, nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/orders/ORD-1", `{"status":"in-progress","manual_total_amount":"500"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_amount"] != "340.00" || body["manual_total_amount"] != "500.00" || body["effective_total"] != "500.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown order is 404", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().UpdateOrder(gomock.Any(), "ORD-404", gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/orders/ORD-404", `{}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Technicians(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assign success", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().AssignTechnician(gomock.Any(), "ORD-1", "t1").Return(entities.WorkOrder{ID: "ORD-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/ORD-1/technicians", `{"technician_id":"t1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("assign missing technician id", func(t *testing.T) {
		r, _, _ := newOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/orders/ORD-1/technicians", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("assign duplicate is 409", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().AssignTechnician(gomock.Any(), "ORD-1", "t1").Return(entities.WorkOrder{}, usecase.ErrAlreadyAssigned)

		w := doJSON(r, http.MethodPost, "/v1/orders/ORD-1/technicians", `{"technician_id":"t1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove passes the reason", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().RemoveTechnician(gomock.Any(), "ORD-1", "t1", "Baja médica").Return(entities.WorkOrder{ID: "ORD-1"}, nil)

		w := doJSON(r, http.MethodDelete, "/v1/orders/ORD-1/technicians/t1?reason=Baja+m%C3%A9dica", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Materials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add success", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().AddExtraMaterial(gomock.Any(), "ORD-1", "Tornillería", 2, gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, _ int, unitPrice decimal.Decimal) (entities.WorkOrder, error) {
				if unitPrice.StringFixed(2) != "10.00" {
					t.Fatalf("unexpected unit price: %s", unitPrice)
				}
				return entities.WorkOrder{ID: "ORD-1", TotalAmount: decimal.RequireFromString("360.00")}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/orders/ORD-1/materials", `{"name":"Tornillería","quantity":2,"unit_price":"10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_amount"] != "360.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("add incomplete material is 400", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().AddExtraMaterial(gomock.Any(), "ORD-1", "Tornillería", 1, gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrIncompleteMaterial)

		w := doJSON(r, http.MethodPost, "/v1/orders/ORD-1/materials", `{"name":"Tornillería","quantity":1,"unit_price":"-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)
		orders.EXPECT().RemoveExtraMaterial(gomock.Any(), "ORD-1", "m1").Return(entities.WorkOrder{ID: "ORD-1"}, nil)

		w := doJSON(r, http.MethodDelete, "/v1/orders/ORD-1/materials/m1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapWorkOrderError(t *testing.T) {
	if got := mapWorkOrderError(usecase.ErrNoCustomer); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkOrderError(usecase.ErrNoDate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkOrderError(usecase.ErrNoServices); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkOrderError(usecase.ErrIncompleteMaterial); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkOrderError(usecase.ErrUnknownTechnician); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkOrderError(usecase.ErrAlreadyAssigned); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapWorkOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
