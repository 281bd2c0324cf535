// Command nurania-cli performs offline maintenance against the server's
// database. Currently it resets a user's password, for when an admin
// locks themselves out.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/nurania/nurania-go/internal/auth"
	"github.com/nurania/nurania-go/internal/config"
	"github.com/nurania/nurania-go/internal/db"
	"github.com/nurania/nurania-go/internal/store"
)

func main() {
	username := flag.String("reset-password", "", "username whose password should be reset")
	flag.Parse()

	if *username == "" {
		log.Fatal("Usage: nurania-cli -reset-password <username>")
	}

	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	st := store.New(database)
	user, err := st.GetUserByUsername(*username)
	if err != nil {
		log.Fatalf("No such user %q: %v", *username, err)
	}

	password := generateRandomPassword(12)
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash new password: %v", err)
	}
	if err := st.UpdateUserPassword(user.ID, passwordHash); err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}

	fmt.Println("==================================================")
	fmt.Printf("Password for %q has been reset.\n", user.Username)
	fmt.Printf("New password: %s\n", password)
	fmt.Println("Please change this password after logging in.")
	fmt.Println("==================================================")
}

func generateRandomPassword(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
