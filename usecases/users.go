package usecases

import (
	"budget-server/entities"
	"budget-server/repositories"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo    repositories.UserRepository
	ExpenseRepo repositories.ExpenseRepository
}

func NewUserUseCase(userRepo repositories.UserRepository, expenseRepo repositories.ExpenseRepository) *UserUseCase {
	return &UserUseCase{
		UserRepo:    userRepo,
		ExpenseRepo: expenseRepo,
	}
}

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Password *string
}

// Register creates a new account. The username is normalized before the
// duplicate check and stored in normalized form.
func (uc *UserUseCase) Register(username, password string) (*entities.User, error) {
	normalized := entities.NormalizeUsername(username)
	if normalized == "" {
		return nil, validationf("username is required")
	}
	if password == "" {
		return nil, validationf("password is required")
	}

	if _, err := uc.UserRepo.GetByUsername(normalized); err == nil {
		return nil, validationf("username '%s' already exists", normalized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     normalized,
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.Create(user); err != nil {
		// A concurrent registration can slip past the lookup above and
		// hit the unique index instead
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validationf("username '%s' already exists", normalized)
		}
		return nil, err
	}
	return user, nil
}

// Login checks credentials against the stored hash. The username is
// matched exactly as sent; normalization only happens at registration.
func (uc *UserUseCase) Login(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}

	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetAllUsers retrieves all users.
func (uc *UserUseCase) GetAllUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}

// UpdateUser applies the fields present in upd. A present but empty
// username or password is rejected; both columns are required.
func (uc *UserUseCase) UpdateUser(id uint, upd UserUpdate) (*entities.User, error) {
	existing, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if upd.Username != nil {
		normalized := entities.NormalizeUsername(*upd.Username)
		if normalized == "" {
			return nil, validationf("username must not be empty")
		}
		if other, err := uc.UserRepo.GetByUsername(normalized); err == nil && other.ID != id {
			return nil, validationf("username '%s' already exists", normalized)
		}
		existing.Username = normalized
	}

	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, validationf("password must not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}

	if err := uc.UserRepo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validationf("username '%s' already exists", existing.Username)
		}
		return nil, err
	}
	return existing, nil
}

// DeleteUser removes the user row. Owned expenses are left in place and
// keep their user_id; the store tolerates orphans.
func (uc *UserUseCase) DeleteUser(id uint) error {
	if _, err := uc.UserRepo.GetByID(id); err != nil {
		return ErrUserNotFound
	}
	return uc.UserRepo.Delete(id)
}

// GetUserExpenses lists the expenses owned by a user.
func (uc *UserUseCase) GetUserExpenses(id uint) ([]entities.Expense, error) {
	if _, err := uc.UserRepo.GetByID(id); err != nil {
		return nil, ErrUserNotFound
	}
	return uc.ExpenseRepo.GetByUserID(id)
}
