package repositories

import (
	"budget-server/db"
	"budget-server/entities"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Find(&users).Error
	return users, err
}

func (r *userPgRepository) Update(user *entities.User) error {
	return r.db.GetDB().Save(user).Error
}

func (r *userPgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.User{}).Error
}
