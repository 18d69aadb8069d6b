package server

import (
	"budget-server/db"
	httpHandler "budget-server/handlers/http"
	"budget-server/repositories"
	"budget-server/usecases"
	"budget-server/web"
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	s := &Server{
		app: gin.Default(),
		db:  database,
	}
	s.setup()
	return s
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.app
}

// requestID tags every response with an X-Request-ID, generating one
// when the client did not send its own.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) setup() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))
	s.app.Use(requestID())

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	expenseRepo := repositories.NewExpensePgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, expenseRepo)
	expenseUseCase := usecases.NewExpenseUseCase(expenseRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	expenseHandler := httpHandler.NewExpenseHandler(expenseUseCase)
	pageHandler := httpHandler.NewPageHandler()

	// Setup API routes
	api := s.app.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/expenses", userHandler.GetUserExpenses)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.GET("", expenseHandler.GetAllExpenses)
			expenses.GET("/:id", expenseHandler.GetExpense)
			expenses.PUT("/:id", expenseHandler.UpdateExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExpense)
		}
	}

	// Frontend demo pages, rendered from embedded templates
	s.app.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	s.app.GET("/", pageHandler.Home)
	s.app.GET("/home", pageHandler.Home)
	s.app.GET("/index", pageHandler.Home)
	s.app.GET("/about", pageHandler.About)
	s.app.GET("/students", pageHandler.Students)
}

func (s *Server) Start(addr string) error {
	return s.app.Run(addr)
}
