package repositories

import "budget-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	Update(user *entities.User) error
	Delete(id uint) error
}

type ExpenseRepository interface {
	Create(expense *entities.Expense) error
	GetByID(id uint) (*entities.Expense, error)
	GetAll() ([]entities.Expense, error)
	GetByUserID(userID uint) ([]entities.Expense, error)
	Update(expense *entities.Expense) error
	Delete(id uint) error
}
