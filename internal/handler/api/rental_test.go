//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"equiprent/internal/domain/contract"
	"equiprent/internal/domain/pricing"
	"equiprent/internal/handler/api"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/commands"
	"equiprent/internal/usecase/queries"
)

type stubRentalCommands struct {
	createFn func(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*commands.CreateRentalResult, error)
	returnFn func(ctx context.Context, contractID, itemID uuid.UUID) error
}

func (s *stubRentalCommands) CreateRental(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*commands.CreateRentalResult, error) {
	return s.createFn(ctx, customerID, itemIDs, start, end)
}

func (s *stubRentalCommands) ReturnItem(ctx context.Context, contractID, itemID uuid.UUID) error {
	return s.returnFn(ctx, contractID, itemID)
}

type stubContractQueries struct {
	getFn  func(ctx context.Context, id uuid.UUID) (*queries.ContractView, error)
	listFn func(ctx context.Context) ([]*queries.ContractListItem, error)
}

func (s *stubContractQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	return s.getFn(ctx, id)
}

func (s *stubContractQueries) ListOpen(ctx context.Context) ([]*queries.ContractListItem, error) {
	return s.listFn(ctx)
}

type stubPricingQueries struct {
	quoteFn func(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*queries.QuoteView, error)
}

func (s *stubPricingQueries) QuoteBreakdown(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID, start, end time.Time) (*queries.QuoteView, error) {
	return s.quoteFn(ctx, customerID, itemIDs, start, end)
}

type RentalHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	commands  *stubRentalCommands
	contracts *stubContractQueries
	pricing   *stubPricingQueries
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubRentalCommands{}
	s.contracts = &stubContractQueries{}
	s.pricing = &stubPricingQueries{}
	handler := api.NewRentalHandler(s.commands, s.contracts, s.pricing)

	s.router.POST("/rentals", handler.CreateRental)
	s.router.POST("/rentals/quote", handler.Quote)
	s.router.POST("/rentals/:id/returns", handler.ReturnItem)
	s.router.GET("/rentals/:id", handler.GetContract)
	s.router.GET("/rentals", handler.ListOpenContracts)
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) postJSON(path string, body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validRentalBody() map[string]any {
	return map[string]any{
		"customer_id": uuid.New().String(),
		"item_ids":    []string{uuid.New().String()},
		"start_date":  "2026-09-01T00:00:00Z",
		"end_date":    "2026-09-05T00:00:00Z",
	}
}

func sampleResult(s *suite.Suite) *commands.CreateRentalResult {
	period, err := contract.NewPeriod(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	cont, err := contract.NewContract(uuid.New(), period, decimal.RequireFromString("250"), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	return &commands.CreateRentalResult{
		Contract: cont,
		Price: pricing.Breakdown{
			Base:  decimal.RequireFromString("250"),
			Final: decimal.RequireFromString("250"),
		},
	}
}

func (s *RentalHandlerTestSuite) TestCreateRental() {
	s.Run("created", func() {
		s.commands.createFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*commands.CreateRentalResult, error) {
			return sampleResult(&s.Suite), nil
		}

		rec := s.postJSON("/rentals", validRentalBody())
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("active", body["status"])
		s.Contains(body, "price")
	})

	s.Run("malformed body", func() {
		rec := s.postJSON("/rentals", map[string]any{"customer_id": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown customer", func() {
		s.commands.createFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*commands.CreateRentalResult, error) {
			return nil, errs.ErrCustomerNotFound
		}
		rec := s.postJSON("/rentals", validRentalBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("invalid period", func() {
		s.commands.createFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*commands.CreateRentalResult, error) {
			return nil, errs.ErrInvalidDateRange
		}
		rec := s.postJSON("/rentals", validRentalBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unavailable items carry their ids", func() {
		blocked := uuid.New()
		s.commands.createFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*commands.CreateRentalResult, error) {
			return nil, &commands.UnavailableItemsError{ItemIDs: []uuid.UUID{blocked}}
		}

		rec := s.postJSON("/rentals", validRentalBody())
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), blocked.String())
	})

	s.Run("concurrent claim maps to conflict", func() {
		s.commands.createFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*commands.CreateRentalResult, error) {
			return nil, &commands.ConcurrencyConflictError{ItemIDs: []uuid.UUID{uuid.New()}}
		}
		rec := s.postJSON("/rentals", validRentalBody())
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *RentalHandlerTestSuite) TestReturnItem() {
	contractID := uuid.New()

	s.Run("ok returns the refreshed contract", func() {
		s.commands.returnFn = func(_ context.Context, _, _ uuid.UUID) error { return nil }
		s.contracts.getFn = func(_ context.Context, id uuid.UUID) (*queries.ContractView, error) {
			return &queries.ContractView{ID: id, Status: "completed", TotalPrice: decimal.RequireFromString("250")}, nil
		}

		rec := s.postJSON(fmt.Sprintf("/rentals/%s/returns", contractID),
			map[string]any{"item_id": uuid.New().String()})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "completed")
	})

	s.Run("item not linked", func() {
		s.commands.returnFn = func(_ context.Context, _, _ uuid.UUID) error { return errs.ErrItemNotLinked }

		rec := s.postJSON(fmt.Sprintf("/rentals/%s/returns", contractID),
			map[string]any{"item_id": uuid.New().String()})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("bad contract id", func() {
		rec := s.postJSON("/rentals/not-a-uuid/returns", map[string]any{"item_id": uuid.New().String()})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RentalHandlerTestSuite) TestQuote() {
	s.Run("returns the breakdown", func() {
		s.pricing.quoteFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*queries.QuoteView, error) {
			return &queries.QuoteView{
				Base:  decimal.RequireFromString("400"),
				Final: decimal.RequireFromString("300"),
			}, nil
		}

		rec := s.postJSON("/rentals/quote", validRentalBody())
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "final")
	})

	s.Run("unknown item in cart", func() {
		s.pricing.quoteFn = func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _, _ time.Time) (*queries.QuoteView, error) {
			return nil, errs.ErrItemNotFound
		}
		rec := s.postJSON("/rentals/quote", validRentalBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
