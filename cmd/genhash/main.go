// genhash prints a bcrypt hash for the given password. Used to seed the
// first admin account directly in the database.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generatePasswordHash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func main() {
	password := "AdminQuestHub2026!"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hash, err := generatePasswordHash(password, 14)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
