package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/polkiloo/gpsolutions/internal/pkg/auth"
)

const hashAdminKeyCommand = "hash-admin-key"

// hashAdminKey reads an admin key from the first line of in and prints its bcrypt hash,
// suitable for ADMIN_KEY_HASH.
func hashAdminKey(in io.Reader, out io.Writer) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return errors.New("admin key is empty")
	}

	hash, err := auth.NewBcryptHasher(0).Hash(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
