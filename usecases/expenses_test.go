package usecases

import (
	"testing"
	"time"

	"budget-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExpenseUseCaseSuite struct {
	suite.Suite
	expenses *ExpenseUseCase
}

func (s *ExpenseUseCaseSuite) SetupTest() {
	database := newTestDatabase(s.T())
	s.expenses = NewExpenseUseCase(repositories.NewExpensePgRepository(database))
}

func (s *ExpenseUseCaseSuite) create(title, category string, amount float64, userID uint) uint {
	expense, err := s.expenses.CreateExpense(ExpenseCreate{
		Title:       title,
		Description: "test expense",
		Amount:      &amount,
		Category:    category,
		UserID:      userID,
	})
	require.NoError(s.T(), err)
	return expense.ID
}

func (s *ExpenseUseCaseSuite) TestCreateCanonicalizesCategory() {
	id := s.create("Lunch", "FOOD", 12.5, 1)

	expense, err := s.expenses.GetExpense(id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", expense.Category)
	assert.Equal(s.T(), 12.5, expense.Amount)
}

func (s *ExpenseUseCaseSuite) TestCreateRejectsUnknownCategory() {
	amount := 9.0
	_, err := s.expenses.CreateExpense(ExpenseCreate{
		Title:    "Flight",
		Amount:   &amount,
		Category: "Travel",
		UserID:   1,
	})
	require.Error(s.T(), err)
	assert.True(s.T(), IsValidation(err))
	assert.Contains(s.T(), err.Error(), "Travel")
}

func (s *ExpenseUseCaseSuite) TestCreateRequiredFields() {
	amount := 1.0

	_, err := s.expenses.CreateExpense(ExpenseCreate{Amount: &amount, Category: "food"})
	assert.True(s.T(), IsValidation(err), "missing title")

	_, err = s.expenses.CreateExpense(ExpenseCreate{Title: "Lunch", Category: "food"})
	assert.True(s.T(), IsValidation(err), "missing amount")
}

func (s *ExpenseUseCaseSuite) TestCreateDefaultsDateToToday() {
	id := s.create("Lunch", "food", 3.0, 1)

	expense, err := s.expenses.GetExpense(id)
	require.NoError(s.T(), err)

	y, m, d := time.Now().Date()
	assert.Equal(s.T(), time.Date(y, m, d, 0, 0, 0, 0, time.UTC), expense.Date.Time)
}

func (s *ExpenseUseCaseSuite) TestCreateAllowsOrphanUserAndAnyAmount() {
	// No user exists; any user_id and any sign of amount are accepted
	amount := -4.2
	expense, err := s.expenses.CreateExpense(ExpenseCreate{
		Title:    "Refund",
		Amount:   &amount,
		Category: "entertainment",
		UserID:   99999,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint(99999), expense.UserID)
	assert.Equal(s.T(), -4.2, expense.Amount)
}

func (s *ExpenseUseCaseSuite) TestUpdateOnlySuppliedFields() {
	id := s.create("Lunch", "food", 12.5, 1)

	amount := 42.5
	updated, err := s.expenses.UpdateExpense(id, ExpenseUpdate{Amount: &amount})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 42.5, updated.Amount)
	assert.Equal(s.T(), "Lunch", updated.Title)
	assert.Equal(s.T(), "test expense", updated.Description)
	assert.Equal(s.T(), "Food", updated.Category)
	assert.Equal(s.T(), uint(1), updated.UserID)
}

func (s *ExpenseUseCaseSuite) TestUpdateHonorsExplicitEmptyDescription() {
	id := s.create("Lunch", "food", 12.5, 1)

	empty := ""
	updated, err := s.expenses.UpdateExpense(id, ExpenseUpdate{Description: &empty})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "", updated.Description)
}

func (s *ExpenseUseCaseSuite) TestUpdateRevalidatesCategory() {
	id := s.create("Lunch", "food", 12.5, 1)

	bad := "Travel"
	_, err := s.expenses.UpdateExpense(id, ExpenseUpdate{Category: &bad})
	assert.True(s.T(), IsValidation(err))
	assert.Contains(s.T(), err.Error(), "Travel")

	good := "EDUCATION"
	updated, err := s.expenses.UpdateExpense(id, ExpenseUpdate{Category: &good})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Education", updated.Category)
}

func (s *ExpenseUseCaseSuite) TestUpdateUnknownExpense() {
	amount := 1.0
	_, err := s.expenses.UpdateExpense(99999, ExpenseUpdate{Amount: &amount})
	assert.ErrorIs(s.T(), err, ErrExpenseNotFound)
}

func (s *ExpenseUseCaseSuite) TestDeleteExpense() {
	id := s.create("Lunch", "food", 12.5, 1)

	require.NoError(s.T(), s.expenses.DeleteExpense(id))

	_, err := s.expenses.GetExpense(id)
	assert.ErrorIs(s.T(), err, ErrExpenseNotFound)

	assert.ErrorIs(s.T(), s.expenses.DeleteExpense(id), ErrExpenseNotFound)
	assert.ErrorIs(s.T(), s.expenses.DeleteExpense(99999), ErrExpenseNotFound)
}

func TestExpenseUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ExpenseUseCaseSuite))
}
