package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"climbing-profiles-server/db"
	"climbing-profiles-server/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getAllUsers(w, r)
	case "POST":
		addUser(w, r)
	default:
		logrus.Println("HandleUsers received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// getAllUsers requires a bearer token and a user id claim, but does not
// scope the listing to the caller: every user is returned. The upstream
// behavior is kept on purpose, see DESIGN.md.
func getAllUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticateRequest(w, r)
	if !ok {
		return
	}
	if userID == "" {
		logrus.Println("User ID not found in token")
		http.Error(w, "User ID not found in token", http.StatusBadRequest)
		return
	}

	skip, limit, ok := parsePagination(w, r)
	if !ok {
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())
	users, err := userDAO.GetAllUsers(skip, limit)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(users) == 0 {
		logrus.Println("No users found")
		http.Error(w, "No users found", http.StatusNotFound)
		return
	}

	// never expose stored credentials
	for i := range users {
		users[i].Password = ""
	}

	encodeJSON(w, http.StatusOK, users)
}

func addUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		logrus.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			logrus.Println("Error closing request body: ", err)
		}
	}()

	// check non-empty strings
	if user.Username == "" || user.Password == "" {
		logrus.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Println("Error hashing password: ", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}
	user.Password = string(hash)

	userDAO := db.NewUserDAO(db.GetDB())
	user, err = userDAO.AddUser(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Println("Username already exists: ", err)
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		}
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	// never expose stored credentials
	user.Password = ""

	encodeJSON(w, http.StatusCreated, user)
}
