package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
	"github.com/polkiloo/gpsolutions/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/gpsolutions/internal/test"
)

const testSession = "session-1"

func init() {
	gin.SetMode(gin.TestMode)
}

func withSession(c *gin.Context) {
	c.Set(middleware.SessionIDContextKey, testSession)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, w).Error
}

func TestCurrentSessionID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, CurrentSessionID(c))

	c.Set(middleware.SessionIDContextKey, "abc")
	assert.Equal(t, "abc", CurrentSessionID(c))
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", domainErrors.Validation("Please select a topic."), http.StatusUnprocessableEntity, "Please select a topic."},
		{"not found", fmt.Errorf("wrap: %w", domainErrors.ErrNotFound), http.StatusNotFound, "Not found"},
		{"conflict", domainErrors.ErrAlreadyExists, http.StatusConflict, "Already exists"},
		{"empty cart", domainErrors.ErrEmptyCart, http.StatusBadRequest, "Cart is empty"},
		{"payment", fmt.Errorf("create: %w", domainErrors.ErrPaymentFailed), http.StatusBadGateway, "Payment provider error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) { writeError(c, tc.err) }, nil, nil, nil)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, errorBody(t, w))
		})
	}
}

func TestWriteErrorRateLimited(t *testing.T) {
	err := fmt.Errorf("create: %w", payment.TooManyRequestsError{RetryAfter: 30 * time.Second})
	w := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) { writeError(c, err) }, nil, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

func TestStagingHandlerList(t *testing.T) {
	facade := testhelpers.StagingFacadeStub{ListFn: func(_ context.Context, sid string) ([]model.AssignmentTask, error) {
		assert.Equal(t, testSession, sid)
		return []model.AssignmentTask{
			{ID: 1, WordCount: "300"},
			{ID: 2, File: &model.FileRef{Name: "a.txt", Size: 10, Extension: ".txt"}, WordCount: "2"},
		}, nil
	}}
	w := performRequest(t, http.MethodGet, "/api/staging", "/api/staging", NewStagingHandler(facade, 1024).List, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decode[[]dto.Task](t, w)
	require.Len(t, tasks, 2)
	assert.Equal(t, "300", tasks[0].WordCount.String())
	require.NotNil(t, tasks[1].File)
	assert.Equal(t, "a.txt", tasks[1].File.Name)
}

func TestStagingHandlerAddWords(t *testing.T) {
	var got string
	facade := testhelpers.StagingFacadeStub{WordsFn: func(_ context.Context, _ string, raw string) (*model.AssignmentTask, error) {
		got = raw
		return &model.AssignmentTask{ID: 7, WordCount: raw}, nil
	}}
	h := NewStagingHandler(facade, 1024)

	w := performRequest(t, http.MethodPost, "/api/staging/words", "/api/staging/words", h.AddWords, withSession, []byte(`{"wordCount": 1500}`), jsonHeaders)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1500", got)
	assert.Equal(t, int64(7), decode[dto.Task](t, w).ID)

	w = performRequest(t, http.MethodPost, "/api/staging/words", "/api/staging/words", h.AddWords, withSession, []byte(`{"wordCount": " 42 "}`), jsonHeaders)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "42", got)

	w = performRequest(t, http.MethodPost, "/api/staging/words", "/api/staging/words", h.AddWords, withSession, []byte(`{`), jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid data", errorBody(t, w))
}

func TestStagingHandlerAddWordsValidation(t *testing.T) {
	facade := testhelpers.StagingFacadeStub{WordsFn: func(context.Context, string, string) (*model.AssignmentTask, error) {
		return nil, domainErrors.Validation("Enter a word count before adding.")
	}}
	w := performRequest(t, http.MethodPost, "/api/staging/words", "/api/staging/words", NewStagingHandler(facade, 1024).AddWords, withSession, []byte(`{"wordCount": ""}`), jsonHeaders)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Enter a word count before adding.", errorBody(t, w))
}

func multipartBody(t *testing.T, files map[string]string) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(uploadField, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestStagingHandlerAddFiles(t *testing.T) {
	var uploads []model.Upload
	facade := testhelpers.StagingFacadeStub{FilesFn: func(_ context.Context, _ string, ups []model.Upload) (*model.StageResult, error) {
		uploads = ups
		return &model.StageResult{
			Tasks:    []model.AssignmentTask{{ID: 1, WordCount: "3", File: &model.FileRef{Name: "small.txt", Size: 15, Extension: ".txt"}}},
			Rejected: []model.Rejection{{Name: "big.txt", Err: domainErrors.ErrFileTooLarge, Message: "File too large (max 32B): big.txt"}},
			Warnings: []string{},
		}, nil
	}}

	body, contentType := multipartBody(t, map[string]string{
		"small.txt": "three word text",
		"big.txt":   "this content is longer than the limit",
	})
	w := performRequest(t, http.MethodPost, "/api/staging/files", "/api/staging/files", NewStagingHandler(facade, 32).AddFiles, withSession, body, map[string]string{"Content-Type": contentType})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, uploads, 2)
	byName := map[string]model.Upload{}
	for _, up := range uploads {
		byName[up.Name] = up
	}
	assert.Equal(t, []byte("three word text"), byName["small.txt"].Data)
	assert.Nil(t, byName["big.txt"].Data)
	assert.Greater(t, byName["big.txt"].Size, int64(32))

	resp := decode[dto.StageFilesResponse](t, w)
	require.Len(t, resp.Tasks, 1)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "File too large (max 32B): big.txt", resp.Rejected[0].Error)
	assert.NotNil(t, resp.Warnings)
}

func TestStagingHandlerAddFilesRequiresFiles(t *testing.T) {
	body, contentType := multipartBody(t, nil)
	w := performRequest(t, http.MethodPost, "/api/staging/files", "/api/staging/files", NewStagingHandler(testhelpers.StagingFacadeStub{}, 32).AddFiles, withSession, body, map[string]string{"Content-Type": contentType})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No files provided", errorBody(t, w))

	w = performRequest(t, http.MethodPost, "/api/staging/files", "/api/staging/files", NewStagingHandler(testhelpers.StagingFacadeStub{}, 32).AddFiles, withSession, []byte("plain"), map[string]string{"Content-Type": "text/plain"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStagingHandlerRemove(t *testing.T) {
	var removed int64
	facade := testhelpers.StagingFacadeStub{
		RemoveFn: func(_ context.Context, _ string, id int64) error {
			removed = id
			if id == 404 {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	}
	h := NewStagingHandler(facade, 32)

	w := performRequest(t, http.MethodDelete, "/api/staging/:id", "/api/staging/12", h.Remove, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(12), removed)
	assert.Equal(t, "[]", w.Body.String())

	w = performRequest(t, http.MethodDelete, "/api/staging/:id", "/api/staging/404", h.Remove, withSession, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, http.MethodDelete, "/api/staging/:id", "/api/staging/abc", h.Remove, withSession, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStagingHandlerClear(t *testing.T) {
	cleared := false
	facade := testhelpers.StagingFacadeStub{ClearFn: func(_ context.Context, sid string) error {
		cleared = sid == testSession
		return nil
	}}
	w := performRequest(t, http.MethodDelete, "/api/staging", "/api/staging", NewStagingHandler(facade, 32).Clear, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cleared)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAssignmentHandlerSave(t *testing.T) {
	var saved []model.SingleAssignment
	facade := testhelpers.AssignmentFacadeStub{SaveFn: func(_ context.Context, sid string, list []model.SingleAssignment) ([]model.SingleAssignment, error) {
		assert.Equal(t, testSession, sid)
		saved = list
		return list, nil
	}}
	h := NewAssignmentHandler(facade)

	body := []byte(`{"assignments":[{"id":5,"projectType":"Essay","topic":"History","urgencyType":"days","urgencyValue":3,"tasks":[{"id":1,"wordCount":"250"}]}]}`)
	w := performRequest(t, http.MethodPost, "/api/assignments", "/api/assignments", h.Save, withSession, body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, saved, 1)
	assert.Equal(t, "3", saved[0].UrgencyValue)
	assert.Equal(t, model.UrgencyDays, saved[0].UrgencyType)
	require.Len(t, saved[0].Tasks, 1)
	assert.Equal(t, "250", saved[0].Tasks[0].WordCount)

	w = performRequest(t, http.MethodPost, "/api/assignments", "/api/assignments", h.Save, withSession, []byte(`{"other":true}`), jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid data", errorBody(t, w))
}

func TestAssignmentHandlerSaveConflict(t *testing.T) {
	facade := testhelpers.AssignmentFacadeStub{SaveFn: func(context.Context, string, []model.SingleAssignment) ([]model.SingleAssignment, error) {
		return nil, domainErrors.ErrAlreadyExists
	}}
	w := performRequest(t, http.MethodPost, "/api/assignments", "/api/assignments", NewAssignmentHandler(facade).Save, withSession, []byte(`{"assignments":[]}`), jsonHeaders)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignmentHandlerSaveRejectsInvalidAssignment(t *testing.T) {
	var gotUnit model.UrgencyType
	facade := testhelpers.AssignmentFacadeStub{SaveFn: func(_ context.Context, _ string, list []model.SingleAssignment) ([]model.SingleAssignment, error) {
		gotUnit = list[0].UrgencyType
		return nil, domainErrors.Validation("Please choose urgency in days or hours.")
	}}

	body := []byte(`{"assignments":[{"urgencyType":"weeks","urgencyValue":1,"tasks":[{"id":1,"wordCount":"1e3"}]}]}`)
	w := performRequest(t, http.MethodPost, "/api/assignments", "/api/assignments", NewAssignmentHandler(facade).Save, withSession, body, jsonHeaders)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Please choose urgency in days or hours.", errorBody(t, w))
	assert.Equal(t, model.UrgencyType("weeks"), gotUnit)
}

func TestAssignmentHandlerList(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	facade := testhelpers.AssignmentFacadeStub{ListFn: func(context.Context, string) ([]model.SingleAssignment, error) {
		return []model.SingleAssignment{{ID: 1, ProjectType: "Essay", UrgencyType: model.UrgencyHours, UrgencyValue: "12", SessionID: testSession, CreatedAt: created}}, nil
	}}
	w := performRequest(t, http.MethodGet, "/api/assignments", "/api/assignments", NewAssignmentHandler(facade).List, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[[]dto.Assignment](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "hours", list[0].UrgencyType)
	assert.Equal(t, testSession, list[0].SessionID)
	require.NotNil(t, list[0].CreatedAt)
	assert.True(t, created.Equal(*list[0].CreatedAt))
	assert.NotNil(t, list[0].Tasks)
}

func TestAssignmentHandlerDelete(t *testing.T) {
	var deleted int64
	cleared := false
	facade := testhelpers.AssignmentFacadeStub{
		DeleteFn: func(_ context.Context, _ string, id int64) ([]model.SingleAssignment, error) {
			deleted = id
			if id == 9 {
				return nil, domainErrors.ErrNotFound
			}
			return []model.SingleAssignment{{ID: 2}}, nil
		},
		ClearFn: func(context.Context, string) error {
			cleared = true
			return nil
		},
	}
	h := NewAssignmentHandler(facade)

	w := performRequest(t, http.MethodDelete, "/api/assignments", "/api/assignments?id=1", h.Delete, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), deleted)
	assert.Len(t, decode[[]dto.Assignment](t, w), 1)

	w = performRequest(t, http.MethodDelete, "/api/assignments", "/api/assignments?id=9", h.Delete, withSession, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, http.MethodDelete, "/api/assignments", "/api/assignments?clear=true", h.Delete, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cleared)
	assert.Equal(t, "[]", w.Body.String())

	for _, target := range []string{"/api/assignments", "/api/assignments?id=x", "/api/assignments?clear=yes"} {
		w = performRequest(t, http.MethodDelete, "/api/assignments", target, h.Delete, withSession, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "Invalid delete request", errorBody(t, w))
	}
}

func TestAssignmentHandlerFinalize(t *testing.T) {
	var draft model.AssignmentDraft
	facade := testhelpers.AssignmentFacadeStub{FinalizeFn: func(_ context.Context, sid string, d model.AssignmentDraft) (*model.SingleAssignment, error) {
		draft = d
		if d.Topic == "" {
			return nil, domainErrors.Validation("Please select a topic.")
		}
		return &model.SingleAssignment{ID: 3, ProjectType: d.ProjectType, Topic: d.Topic, UrgencyType: model.UrgencyDays, UrgencyValue: d.UrgencyValue, SessionID: sid}, nil
	}}
	h := NewAssignmentHandler(facade)

	body := []byte(`{"projectType":"Essay","topic":"Biology","urgencyType":"days","urgencyValue":"5"}`)
	w := performRequest(t, http.MethodPost, "/api/assignments/finalize", "/api/assignments/finalize", h.Finalize, withSession, body, jsonHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "5", draft.UrgencyValue)
	assert.Equal(t, int64(3), decode[dto.Assignment](t, w).ID)

	body = []byte(`{"projectType":"Essay","urgencyType":"days","urgencyValue":2}`)
	w = performRequest(t, http.MethodPost, "/api/assignments/finalize", "/api/assignments/finalize", h.Finalize, withSession, body, jsonHeaders)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Please select a topic.", errorBody(t, w))
}

func TestAssignmentHandlerCart(t *testing.T) {
	facade := testhelpers.AssignmentFacadeStub{CartFn: func(context.Context, string) (*model.CartSummary, error) {
		return &model.CartSummary{
			Quotes: []model.AssignmentQuote{{
				Assignment: model.SingleAssignment{ID: 1, ProjectType: "Essay"},
				Words:      1000,
				Multiplier: 2,
				Price:      20,
			}},
			TotalPrice:         20,
			StagedWordCount:    100,
			TotalAssignedWords: 1000,
			BillableWords:      1100,
		}, nil
	}}
	w := performRequest(t, http.MethodGet, "/api/cart", "/api/cart", NewAssignmentHandler(facade).Cart, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CartResponse](t, w)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, 20.0, resp.TotalPrice)
	assert.Equal(t, 2.0, resp.Assignments[0].Multiplier)
	assert.Equal(t, int64(1100), resp.BillableWords)
}

func TestAssignmentHandlerClearStore(t *testing.T) {
	called := false
	facade := testhelpers.AssignmentFacadeStub{ClearStoreFn: func(context.Context) error {
		called = true
		return nil
	}}
	w := performRequest(t, http.MethodDelete, "/api/admin/assignments", "/api/admin/assignments", NewAssignmentHandler(facade).ClearStore, nil, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, called)
}

func TestCheckoutHandlerUsesCartWithoutBody(t *testing.T) {
	var usedCart bool
	facade := testhelpers.CheckoutFacadeStub{CheckoutFn: func(_ context.Context, sid string) (string, error) {
		usedCart = sid == testSession
		return "https://pay.example/cart", nil
	}}
	h := NewCheckoutHandler(facade)

	w := performRequest(t, http.MethodPost, "/api/checkout", "/api/checkout", h.Checkout, withSession, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, usedCart)
	assert.Equal(t, "https://pay.example/cart", decode[dto.CheckoutResponse](t, w).URL)

	w = performRequest(t, http.MethodPost, "/api/checkout", "/api/checkout", h.Checkout, withSession, []byte(`{"lineItems":[]}`), jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, http.MethodPost, "/api/checkout", "/api/checkout", h.Checkout, withSession, []byte(`{bad`), jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandlerWithLineItems(t *testing.T) {
	var items []model.LineItem
	facade := testhelpers.CheckoutFacadeStub{ItemsFn: func(_ context.Context, _ string, got []model.LineItem) (string, error) {
		items = got
		return "https://pay.example/items", nil
	}}
	body := []byte(`{"lineItems":[{"price_data":{"currency":"usd","product_data":{"name":"Essay","description":"History"},"unit_amount":1250},"quantity":1}]}`)

	w := performRequest(t, http.MethodPost, "/api/checkout", "/api/checkout", NewCheckoutHandler(facade).Checkout, withSession, body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, model.LineItem{Name: "Essay", Description: "History", Currency: "usd", UnitAmountCents: 1250, Quantity: 1}, items[0])
}

func TestCheckoutHandlerErrors(t *testing.T) {
	facade := testhelpers.CheckoutFacadeStub{CheckoutFn: func(context.Context, string) (string, error) {
		return "", domainErrors.ErrEmptyCart
	}}
	w := performRequest(t, http.MethodPost, "/api/checkout", "/api/checkout", NewCheckoutHandler(facade).Checkout, withSession, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", errorBody(t, w))
}

func TestCheckoutHandlerStripeSession(t *testing.T) {
	h := NewCheckoutHandler(testhelpers.CheckoutFacadeStub{})

	w := performRequest(t, http.MethodPost, "/api/stripe-session", "/api/stripe-session", h.StripeSession, withSession, []byte(`{"lineItems":[]}`), jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No line items provided", errorBody(t, w))

	body := []byte(`{"lineItems":[{"price_data":{"currency":"usd","product_data":{"name":"Essay"},"unit_amount":500},"quantity":2}]}`)
	w = performRequest(t, http.MethodPost, "/api/stripe-session", "/api/stripe-session", h.StripeSession, withSession, body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://checkout.example/items", decode[dto.CheckoutResponse](t, w).URL)
}

func TestSystemHandlerCatalog(t *testing.T) {
	w := performRequest(t, http.MethodGet, "/api/catalog", "/api/catalog", NewSystemHandler(testhelpers.SystemFacadeStub{}).Catalog, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projectTypes":[],"topics":[]}`, w.Body.String())

	facade := testhelpers.SystemFacadeStub{CatalogV: model.Catalog{ProjectTypes: []string{"Essay"}, Topics: []string{"Art"}}}
	w = performRequest(t, http.MethodGet, "/api/catalog", "/api/catalog", NewSystemHandler(facade).Catalog, nil, nil, nil)
	assert.JSONEq(t, `{"projectTypes":["Essay"],"topics":["Art"]}`, w.Body.String())
}

func TestSystemHandlerSales(t *testing.T) {
	var period model.SalesPeriod
	facade := testhelpers.SystemFacadeStub{SalesFn: func(_ context.Context, p model.SalesPeriod) ([]model.SalesBucket, error) {
		period = p
		return []model.SalesBucket{{Date: "2026-03-01", Count: 2, RevenueCents: 2550}}, nil
	}}
	h := NewSystemHandler(facade)

	w := performRequest(t, http.MethodGet, "/api/admin/analytics/sales", "/api/admin/analytics/sales", h.Sales, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SalesDaily, period)
	assert.JSONEq(t, `[{"date":"2026-03-01","amount":2,"totalRevenue":25.5}]`, w.Body.String())

	w = performRequest(t, http.MethodGet, "/api/admin/analytics/sales", "/api/admin/analytics/sales?period=monthly", h.Sales, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SalesMonthly, period)

	w = performRequest(t, http.MethodGet, "/api/admin/analytics/sales", "/api/admin/analytics/sales?period=weekly", h.Sales, nil, nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSystemHandlerHealth(t *testing.T) {
	w := performRequest(t, http.MethodGet, "/healthz", "/healthz", NewSystemHandler(testhelpers.SystemFacadeStub{}).Health, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = performRequest(t, http.MethodGet, "/healthz", "/healthz", NewSystemHandler(testhelpers.SystemFacadeStub{HealthErr: errors.New("db down")}).Health, nil, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlersAcceptQuoteFacadeStub(t *testing.T) {
	var facade QuoteFacade = testhelpers.QuoteFacadeStub{}
	assert.NotNil(t, NewStagingHandler(facade, 1))
	assert.NotNil(t, NewAssignmentHandler(facade))
	assert.NotNil(t, NewCheckoutHandler(facade))
	assert.NotNil(t, NewSystemHandler(facade))
}
