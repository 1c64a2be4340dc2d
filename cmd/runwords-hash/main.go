// Command runwords-hash prints the bcrypt hash of a password for PASSWORD_HASH.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: runwords-hash <password>")
		os.Exit(2)
	}
	h, err := hashPassword(strings.Join(os.Args[1:], " "))
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	fmt.Println(h)
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost) // cost=10
	return string(b), err
}
