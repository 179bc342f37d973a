package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/pkg/database"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var (
		username = flag.String("username", "", "admin username")
		email    = flag.String("email", "", "admin email")
		password = flag.String("password", "", "admin password (prompted when empty)")
		fullName = flag.String("full-name", "", "display name, defaults to the username")
	)
	flag.Parse()

	log := logger.New()

	if *username == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: createadmin --username <name> --email <email> [--password <password>] [--full-name <name>]")
		os.Exit(1)
	}

	pass := *password
	if pass == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Error("Failed to read password: %v", err)
			os.Exit(1)
		}
		pass = strings.TrimSpace(line)
	}

	if len(pass) < 8 {
		log.Error("Password must be at least 8 characters")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	var existing models.User
	if err := db.Where("email = ? OR username = ?", *email, *username).First(&existing).Error; err == nil {
		log.Error("A user with that username or email already exists")
		os.Exit(1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password: %v", err)
		os.Exit(1)
	}

	name := *fullName
	if name == "" {
		name = *username
	}

	user := &models.User{
		Email:    strings.ToLower(*email),
		Username: *username,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.StudentProfile{
			UserID:   user.ID,
			FullName: name,
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		log.Error("Failed to create admin user: %v", err)
		os.Exit(1)
	}

	log.Info("Created admin user %s (%s)", user.Username, user.Email)
}
