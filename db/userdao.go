package db

import (
	"time"

	"climbing-profiles-server/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetAllUsers(skip int, limit int) ([]model.User, error) {
	var users []model.User
	result := userDAO.db.Order("username ASC").Offset(skip).Limit(limit).Find(&users)
	return users, result.Error
}

func (userDAO *UserDAO) GetUserByUsername(username string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where("username = ?", username).First(&user)
	return user, result.Error
}

// AddUser assigns the user a fresh identifier and creation timestamps
// before inserting. The password is stored as supplied; hashing is the
// caller's concern.
func (userDAO *UserDAO) AddUser(user model.User) (model.User, error) {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	result := userDAO.db.Create(&user)
	return user, result.Error
}
