//go:build ignore

// This script generates the secrets for admin authentication.
// Run with: go run scripts/generate_keys.go [admin-password]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Portfolio Service Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else if password, err = generateSecureKey(18); err != nil {
		fail("admin password", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("password hash", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Admin login")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Println("ADMIN_USERNAME=admin")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (used for admin routes when JWT login is not configured)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	if len(os.Args) <= 1 {
		fmt.Println()
		fmt.Printf("Generated admin password: %s\n", password)
	}
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Quote ADMIN_PASSWORD_HASH if your shell expands $")
}
