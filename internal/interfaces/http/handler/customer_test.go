package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apppartner "github.com/orderhub/backend/internal/application/partner"
	"github.com/orderhub/backend/internal/domain/partner"
	"github.com/orderhub/backend/internal/domain/shared"
	"github.com/orderhub/backend/internal/interfaces/http/router"
)

func setupCustomerRouter(t *testing.T, repo *mockCustomerRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	service := apppartner.NewCustomerService(repo, zap.NewNop())
	router.NewRouter(engine).
		Register(CustomerRoutes(NewCustomerHandler(service))).
		Setup()
	return engine
}

func TestCustomerHandlerRegister(t *testing.T) {
	t.Run("registers a customer", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("ExistsByEmail", mock.Anything, "carol@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := setupCustomerRouter(t, repo)
		w := performRequest(engine, http.MethodPost, "/api/v1/customers/register", gin.H{
			"name": "Carol", "email": "carol@example.com",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("ExistsByEmail", mock.Anything, "carol@example.com").Return(true, nil)

		engine := setupCustomerRouter(t, repo)
		w := performRequest(engine, http.MethodPost, "/api/v1/customers/register", gin.H{
			"name": "Carol", "email": "carol@example.com",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		errInfo := resp["error"].(map[string]any)
		assert.Equal(t, "ERR_ALREADY_EXISTS", errInfo["code"])
	})

	t.Run("malformed email rejected by binding", func(t *testing.T) {
		engine := setupCustomerRouter(t, new(mockCustomerRepo))
		w := performRequest(engine, http.MethodPost, "/api/v1/customers/register", gin.H{
			"name": "Carol", "email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandlerLogin(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		carol := &partner.Customer{Name: "Carol", Email: "carol@example.com"}
		carol.ID = 4
		repo.On("FindByEmail", mock.Anything, "carol@example.com").Return(carol, nil)

		engine := setupCustomerRouter(t, repo)
		w := performRequest(engine, http.MethodPost, "/api/v1/customers/login", gin.H{
			"email": "carol@example.com",
		})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp["data"].(map[string]any)
		assert.Equal(t, float64(4), data["id"])
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		engine := setupCustomerRouter(t, repo)
		w := performRequest(engine, http.MethodPost, "/api/v1/customers/login", gin.H{
			"email": "nobody@example.com",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandlerUpdate(t *testing.T) {
	repo := new(mockCustomerRepo)
	carol := &partner.Customer{Name: "Carol", Email: "carol@example.com"}
	carol.ID = 4
	repo.On("FindByID", mock.Anything, int64(4)).Return(carol, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	engine := setupCustomerRouter(t, repo)
	w := performRequest(engine, http.MethodPut, "/api/v1/customers/4", gin.H{
		"name": "Caroline", "mobile": "555-0103",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Caroline", data["name"])
}
