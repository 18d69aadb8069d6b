package usecases

import (
	"budget-server/entities"
	"budget-server/repositories"
	"strings"
)

type ExpenseUseCase struct {
	ExpenseRepo repositories.ExpenseRepository
}

func NewExpenseUseCase(expenseRepo repositories.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{ExpenseRepo: expenseRepo}
}

// ExpenseCreate carries the fields for a new expense. Amount and Date
// are pointers so missing values can be told apart from zero values.
type ExpenseCreate struct {
	Title       string
	Description string
	Amount      *float64
	Date        *entities.Date
	Category    string
	UserID      uint
}

// ExpenseUpdate carries a partial update. Nil fields are left untouched.
type ExpenseUpdate struct {
	Title       *string
	Description *string
	Amount      *float64
	Date        *entities.Date
	Category    *string
	UserID      *uint
}

func invalidCategory(value string) error {
	return validationf("invalid category '%s', must be one of: %s",
		value, strings.Join(entities.Categories(), ", "))
}

// CreateExpense validates and stores a new expense. The category is
// matched case-insensitively and persisted in canonical casing. The
// date defaults to today when omitted. UserID is taken as-is; the
// owning user does not have to exist.
func (uc *ExpenseUseCase) CreateExpense(in ExpenseCreate) (*entities.Expense, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationf("title is required")
	}
	if in.Amount == nil {
		return nil, validationf("amount is required")
	}

	category, ok := entities.NormalizeCategory(in.Category)
	if !ok {
		return nil, invalidCategory(in.Category)
	}

	date := entities.Today()
	if in.Date != nil {
		date = entities.NewDate(in.Date.Time)
	}

	expense := &entities.Expense{
		Title:       in.Title,
		Description: in.Description,
		Amount:      *in.Amount,
		Date:        date,
		Category:    category,
		UserID:      in.UserID,
	}
	if err := uc.ExpenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(id uint) (*entities.Expense, error) {
	expense, err := uc.ExpenseRepo.GetByID(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// GetAllExpenses retrieves all expenses.
func (uc *ExpenseUseCase) GetAllExpenses() ([]entities.Expense, error) {
	return uc.ExpenseRepo.GetAll()
}

// UpdateExpense applies the fields present in upd to an existing
// expense. A supplied category is revalidated the same way as on
// create.
func (uc *ExpenseUseCase) UpdateExpense(id uint, upd ExpenseUpdate) (*entities.Expense, error) {
	existing, err := uc.ExpenseRepo.GetByID(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, validationf("title must not be empty")
		}
		existing.Title = *upd.Title
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Amount != nil {
		existing.Amount = *upd.Amount
	}
	if upd.Date != nil {
		existing.Date = entities.NewDate(upd.Date.Time)
	}
	if upd.Category != nil {
		category, ok := entities.NormalizeCategory(*upd.Category)
		if !ok {
			return nil, invalidCategory(*upd.Category)
		}
		existing.Category = category
	}
	if upd.UserID != nil {
		existing.UserID = *upd.UserID
	}

	if err := uc.ExpenseRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteExpense removes an expense by ID.
func (uc *ExpenseUseCase) DeleteExpense(id uint) error {
	if _, err := uc.ExpenseRepo.GetByID(id); err != nil {
		return ErrExpenseNotFound
	}
	return uc.ExpenseRepo.Delete(id)
}
