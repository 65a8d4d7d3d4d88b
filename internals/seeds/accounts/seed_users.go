package accounts

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/accounts/dto"
	"schooloffice_backend/internals/features/accounts/model"
)

type UserSeed struct {
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SeedUsersFromJSON inserts users that do not exist yet (matched by user name).
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] seeding users from", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] read %s: %v", filePath, err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		log.Fatalf("[ERROR] decode %s: %v", filePath, err)
	}

	for _, in := range inputs {
		if !constants.IsValidRole(in.Role) {
			log.Printf("[WARN] user %q has unknown role %q, skipped", in.UserName, in.Role)
			continue
		}
		var n int64
		db.Model(&model.UserModel{}).Where("user_name = ?", in.UserName).Count(&n)
		if n > 0 {
			continue
		}

		hash, err := dto.HashPassword(in.Password)
		if err != nil {
			log.Printf("[ERROR] hash password for %q: %v", in.UserName, err)
			continue
		}
		u := model.UserModel{
			UserName:         in.UserName,
			UserPasswordHash: hash,
			UserRole:         in.Role,
			UserFirstName:    in.FirstName,
			UserLastName:     in.LastName,
			UserIsActive:     true,
		}
		if email := strings.TrimSpace(in.Email); email != "" {
			u.UserEmail = &email
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("[ERROR] insert user %q: %v", in.UserName, err)
			continue
		}
		log.Printf("[INFO] user %q created", in.UserName)
	}
}
