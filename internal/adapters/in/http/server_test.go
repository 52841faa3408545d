package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "cakery/internal/adapters/in/http"
	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/core/application/usecases/queries"
	"cakery/internal/core/domain/model/order"
	"cakery/internal/core/domain/model/staff"
	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// serverFixture wires the server with mocked ports and a pass-through
// guard. The guard itself is covered in auth_test.go.
type serverFixture struct {
	orders   *MockOrderRepository
	staff    *MockStaffRepository
	notifier *MockEventNotifier
	issuer   *MockTokenIssuer
	echo     *echo.Echo
}

func newServerFixture() *serverFixture {
	f := &serverFixture{
		orders:   new(MockOrderRepository),
		staff:    new(MockStaffRepository),
		notifier: new(MockEventNotifier),
		issuer:   new(MockTokenIssuer),
	}

	server := adapter.NewServer(
		commands.NewLoginCommandHandler(f.staff, f.issuer),
		commands.NewCreateOrderCommandHandler(f.orders, f.notifier, discardLogger()),
		commands.NewUpdateOrderCommandHandler(f.orders),
		commands.NewChangeOrderStatusCommandHandler(f.orders, f.notifier, discardLogger()),
		commands.NewDeleteOrderCommandHandler(f.orders),
		queries.NewGetAllOrdersQueryHandler(nil),
		queries.NewGetTodayOrdersQueryHandler(nil),
		queries.NewGetTomorrowConfirmedOrdersQueryHandler(nil),
		queries.NewGetOrderByIDQueryHandler(nil),
		queries.NewGetMonthlyIncomeQueryHandler(nil),
	)

	passThrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }

	f.echo = echo.New()
	f.echo.Validator = adapter.NewValidator()
	server.RegisterRoutes(f.echo, passThrough)

	return f
}

func (f *serverFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	f := newServerFixture()

	rec := f.do(http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Cakery API is running!", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid credentials return token and profile", func(t *testing.T) {
		f := newServerFixture()
		member, err := staff.RestoreStaff(3, "jane", string(hash), "Jane Smith")
		require.NoError(t, err)
		f.staff.On("GetByUsername", mock.Anything, "jane").Return(member, nil)
		f.issuer.On("Issue", token.Identity{UserID: 3, Username: "jane"}).Return("signed-token", nil)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"jane","password":"correct-horse"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "signed-token", body["token"])
		user := body["user"].(map[string]any)
		assert.EqualValues(t, 3, user["id"])
		assert.Equal(t, "jane", user["username"])
		assert.Equal(t, "Jane Smith", user["full_name"])
	})

	t.Run("unknown user fails with the generic message", func(t *testing.T) {
		f := newServerFixture()
		f.staff.On("GetByUsername", mock.Anything, "ghost").
			Return(nil, errs.NewObjectNotFoundError("username", "ghost"))

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"whatever"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})

	t.Run("wrong password fails with the same message", func(t *testing.T) {
		f := newServerFixture()
		member, err := staff.RestoreStaff(3, "jane", string(hash), "Jane Smith")
		require.NoError(t, err)
		f.staff.On("GetByUsername", mock.Anything, "jane").Return(member, nil)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"jane","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})

	t.Run("missing fields fail before any lookup", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"jane"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.staff.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})
}

func TestCreateOrder(t *testing.T) {
	validBody := `{
		"recipient_name": "Jane Smith",
		"phone": "555-0101",
		"address": "1 Bakery Road",
		"cake_description": "Chocolate fudge, 2 tiers",
		"delivery_fee": 20.00,
		"delivery_date": "2024-07-01",
		"delivery_time": "10:00",
		"collection_time": "09:00",
		"notes": ""
	}`

	t.Run("valid order returns 201 with the new id", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*order.Order).SetID(42)
			}).Return(nil)
		f.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

		rec := f.do(http.MethodPost, "/api/orders", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Order created successfully", body["message"])
		assert.EqualValues(t, 42, body["data"].(map[string]any)["id"])
	})

	t.Run("missing required fields return 400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPost, "/api/orders", `{"recipient_name":"Jane Smith"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("malformed delivery date returns 400", func(t *testing.T) {
		f := newServerFixture()

		body := strings.Replace(validBody, "2024-07-01", "01/07/2024", 1)
		rec := f.do(http.MethodPost, "/api/orders", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage fault returns 500 with the diagnostic", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("Add", mock.Anything, mock.Anything).
			Return(errs.NewStorageError(assert.AnError))

		rec := f.do(http.MethodPost, "/api/orders", validBody)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "storage failure")
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("named fields are forwarded, id stripped", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("ApplyUpdate", mock.Anything, int64(7), mock.MatchedBy(func(doc order.UpdateDocument) bool {
			fields := doc.Fields()
			_, hasID := fields["id"]
			return fields["notes"] == "leave at door" && !hasID
		})).Return(nil)

		rec := f.do(http.MethodPut, "/api/orders/7", `{"id":99,"notes":"leave at door"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order updated successfully", decodeBody(t, rec)["message"])
		f.orders.AssertExpectations(t)
	})

	t.Run("empty document returns 400 without a write", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPut, "/api/orders/7", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "no fields to update")
		f.orders.AssertNotCalled(t, "ApplyUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown column returns 400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPut, "/api/orders/7", `{"favourite_colour":"blue"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPut, "/api/orders/abc", `{"notes":"x"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangeOrderStatus(t *testing.T) {
	t.Run("valid transition returns the confirmation message", func(t *testing.T) {
		f := newServerFixture()
		existing := restoredOrder(t, 7)
		f.orders.On("Get", mock.Anything, int64(7)).Return(existing, nil)
		f.orders.On("UpdateStatus", mock.Anything, int64(7), order.StatusConfirmed).Return(nil)
		f.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

		rec := f.do(http.MethodPatch, "/api/orders/7/status", `{"status":"confirmed"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order status updated to confirmed", decodeBody(t, rec)["message"])
	})

	t.Run("unknown status value lists the valid set", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodPatch, "/api/orders/7/status", `{"status":"shipped"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		message := decodeBody(t, rec)["message"].(string)
		assert.Contains(t, message, "pending, confirmed, delivered, cancelled")
		f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing order returns 404", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("Get", mock.Anything, int64(7)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(7)))

		rec := f.do(http.MethodPatch, "/api/orders/7/status", `{"status":"confirmed"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", decodeBody(t, rec)["message"])
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("existing order is removed", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("Delete", mock.Anything, int64(7)).Return(nil)

		rec := f.do(http.MethodDelete, "/api/orders/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order deleted successfully", decodeBody(t, rec)["message"])
	})

	t.Run("missing order returns 404", func(t *testing.T) {
		f := newServerFixture()
		f.orders.On("Delete", mock.Anything, int64(7)).
			Return(errs.NewObjectNotFoundError("order", int64(7)))

		rec := f.do(http.MethodDelete, "/api/orders/7", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetMonthlyIncome_BadFilters(t *testing.T) {
	t.Run("month without year returns 400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodGet, "/api/orders/income/monthly?month=6", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric year returns 400", func(t *testing.T) {
		f := newServerFixture()

		rec := f.do(http.MethodGet, "/api/orders/income/monthly?year=twenty", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func restoredOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(
		id,
		"Jane Smith",
		"555-0101",
		"1 Bakery Road",
		"Chocolate fudge, 2 tiers",
		20.00,
		time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		"10:00",
		"09:00",
		"",
		order.StatusPending,
	)
	require.NoError(t, err)
	return restored
}
