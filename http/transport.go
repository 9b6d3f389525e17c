package http

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	converter "go-currency-converter-agent"
	"go-currency-converter-agent/agent"
	"go-currency-converter-agent/exchange"
	"go-currency-converter-agent/rates"
	"go-currency-converter-agent/skill"
)

// CardPath is where the agent card is published.
const CardPath = "/.well-known/agent.json"

const requestIDHeader = "X-Request-ID"

// Agent the agent being hosted
type Agent interface {
	Name() string
	Version() string
	Card() agent.Card
	Invoke(ctx context.Context, id string, args json.RawMessage) (agent.Result, error)
}

// Server dependencies for HTTP Server functions
type Server struct {
	Agent   Agent
	Service exchange.Service
	Logger  log.Logger
	router  *gin.Engine
}

// NewServer builds the HTTP handler hosting a and exposing s directly.
func NewServer(a Agent, s exchange.Service, logger log.Logger) *Server {
	server := &Server{
		Agent:   a,
		Service: s,
		Logger:  logger,
		router:  gin.New(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, requestIDHeader)

	s.router.Use(gin.Recovery(), s.requestID(), s.accessLog(), cors.New(corsConfig))

	s.router.GET(CardPath, s.card())
	s.router.GET("/health", s.health())
	s.router.POST("/skills/:id", s.invoke())
	s.router.POST("/api/convert", s.convert())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// requestID tags each request with the caller's X-Request-ID or a fresh one
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		level.Debug(s.Logger).Log(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetString("request_id"),
			"took", time.Since(begin),
		)
	}
}

// card publishes the agent card
func (s *Server) card() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Agent.Card())
	}
}

func (s *Server) health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"agent":   s.Agent.Name(),
			"version": s.Agent.Version(),
			"rates":   rates.Table(),
		})
	}
}

// invoke runs a skill with the request body as its arguments
func (s *Server) invoke() gin.HandlerFunc {
	return func(c *gin.Context) {
		args, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		result, err := s.Agent.Invoke(c.Request.Context(), c.Param("id"), args)
		switch {
		case errors.Is(err, agent.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown skill"})
			return
		case errors.Is(err, skill.ErrInvalidArguments):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			level.Error(s.Logger).Log("msg", "skill failed", "skill", c.Param("id"), "request_id", c.GetString("request_id"), "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "skill failed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() gin.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency converter.Currency `json:"fromCurrency" binding:"required"`
		ToCurrency   converter.Currency `json:"toCurrency" binding:"required"`
		Amount       *converter.Amount  `json:"amount" binding:"required"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange converter.Rate   `json:"exchange"`
		Amount   converter.Amount `json:"amount"`
		Original converter.Amount `json:"original"`
		Result   string           `json:"result"`
	}

	return func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		result, err := s.Service.Convert(c.Request.Context(), *req.Amount, req.FromCurrency, req.ToCurrency)
		if errors.Is(err, converter.ErrUnsupportedCurrency) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": converter.UnsupportedCurrencyMessage})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed conversion"})
			return
		}
		// JSON has no representation for infinities or NaN
		if f := float64(result.Amount); math.IsInf(f, 0) || math.IsNaN(f) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "converted amount out of range", "result": result.String()})
			return
		}

		c.JSON(http.StatusOK, response{
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: *req.Amount,
			Result:   result.String(),
		})
	}
}
