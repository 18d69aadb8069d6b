package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered demo pages. These render a
// fixed sample dataset and never touch the database.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type sampleStudent struct {
	Name  string
	Major string
	Year  int
}

var sampleStudents = []sampleStudent{
	{Name: "Alice Johnson", Major: "Computer Science", Year: 2},
	{Name: "Omar Hassan", Major: "Economics", Year: 3},
	{Name: "Mei Lin", Major: "Mathematics", Year: 1},
	{Name: "Diego Ramirez", Major: "Physics", Year: 4},
}

// Home handles GET /, /home and /index
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Budget Manager",
	})
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": "About",
	})
}

// Students handles GET /students
func (h *PageHandler) Students(c *gin.Context) {
	c.HTML(http.StatusOK, "students.html", gin.H{
		"title":    "Students",
		"students": sampleStudents,
	})
}
