// Command hash-password prints bcrypt hashes for passwords read one per line
// from stdin, for seeding users directly in the database.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := hashPasswords(os.Stdin, os.Stdout, auth.NewBcryptHasher(*cost)); err != nil {
		fmt.Fprintf(os.Stderr, "hash-password: %v\n", err)
		os.Exit(1)
	}
}

// hashPasswords writes one hash per input line. Passwords the API would
// reject at registration are refused.
func hashPasswords(in io.Reader, out io.Writer, hasher auth.PasswordHasher) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		password := scanner.Text()
		if utf8.RuneCountInString(password) < domain.MinPasswordLength {
			return fmt.Errorf("line %d: %w", line, domain.ErrPasswordTooShort)
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("line %d: failed to hash password: %w", line, err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return scanner.Err()
}
