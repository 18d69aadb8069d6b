package repositories

import (
	"budget-server/db"
	"budget-server/entities"
)

type expensePgRepository struct {
	db db.Database
}

func NewExpensePgRepository(database db.Database) ExpenseRepository {
	return &expensePgRepository{db: database}
}

func (r *expensePgRepository) Create(expense *entities.Expense) error {
	return r.db.GetDB().Create(expense).Error
}

func (r *expensePgRepository) GetByID(id uint) (*entities.Expense, error) {
	var expense entities.Expense
	err := r.db.GetDB().Where("id = ?", id).First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expensePgRepository) GetAll() ([]entities.Expense, error) {
	var expenses []entities.Expense
	err := r.db.GetDB().Find(&expenses).Error
	return expenses, err
}

func (r *expensePgRepository) GetByUserID(userID uint) ([]entities.Expense, error) {
	var expenses []entities.Expense
	err := r.db.GetDB().Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expensePgRepository) Update(expense *entities.Expense) error {
	return r.db.GetDB().Save(expense).Error
}

func (r *expensePgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Expense{}).Error
}
