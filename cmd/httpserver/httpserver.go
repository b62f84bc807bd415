// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/balancedelivery"
	"github.com/go-split/split-ledger/internal/balanceservice"
	"github.com/go-split/split-ledger/internal/entryrepo"
	"github.com/go-split/split-ledger/internal/middleware"
	"github.com/go-split/split-ledger/internal/settlementservice"
	"github.com/go-split/split-ledger/internal/transactiondelivery"
	"github.com/go-split/split-ledger/internal/transactionrepo"
	"github.com/go-split/split-ledger/internal/transactionservice"
	"github.com/go-split/split-ledger/internal/userdelivery"
	"github.com/go-split/split-ledger/internal/userrepo"
	"github.com/go-split/split-ledger/internal/userservice"
	"github.com/go-split/split-ledger/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	userService := userservice.New(userRepo)
	transactionService := transactionservice.New(transactionRepo)
	balanceService := balanceservice.New(entryRepo)
	settlementService := settlementservice.New(balanceService, transactionService)

	userHandler := userdelivery.NewHandler(userService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	balanceHandler := balancedelivery.NewHandler(balanceService, settlementService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/transactions", transactionHandler.Create)
	engine.PUT("/transactions/:id", transactionHandler.Update)
	engine.GET("/users/:id/balances", balanceHandler.List)
	engine.POST("/users/:id/clear", balanceHandler.Clear)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("splittype", transactiondelivery.ValidSplitType); err != nil {
			return nil, errors.New("cannot register splittype validator")
		}

		if err := v.RegisterValidation("computation", transactiondelivery.ValidComputationType); err != nil {
			return nil, errors.New("cannot register computation validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
