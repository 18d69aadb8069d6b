package httpHandler

import (
	"budget-server/entities"
	"budget-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	useCase *usecases.ExpenseUseCase
}

func NewExpenseHandler(useCase *usecases.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{useCase: useCase}
}

type createExpenseRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Amount      *float64       `json:"amount"`
	Date        *entities.Date `json:"date"`
	Category    string         `json:"category"`
	UserID      uint           `json:"user_id"`
}

type updateExpenseRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Amount      *float64       `json:"amount"`
	Date        *entities.Date `json:"date"`
	Category    *string        `json:"category"`
	UserID      *uint          `json:"user_id"`
}

// CreateExpense handles POST /api/expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	in := usecases.ExpenseCreate{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		UserID:      req.UserID,
	}
	if _, err := h.useCase.CreateExpense(in); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Added an expense.",
	})
}

// GetExpense handles GET /api/expenses/:id
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}

	expense, err := h.useCase.GetExpense(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": expense,
	})
}

// GetAllExpenses handles GET /api/expenses
func (h *ExpenseHandler) GetAllExpenses(c *gin.Context) {
	expenses, err := h.useCase.GetAllExpenses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  expenses,
		"count": len(expenses),
	})
}

// UpdateExpense handles PUT /api/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}

	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	upd := usecases.ExpenseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		UserID:      req.UserID,
	}
	if _, err := h.useCase.UpdateExpense(id, upd); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Updated expense.",
	})
}

// DeleteExpense handles DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}

	if err := h.useCase.DeleteExpense(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deleted expense.",
	})
}
