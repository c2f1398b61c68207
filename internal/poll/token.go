package poll

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const tokenServiceName = "gridpad.poll"

// LoadToken retrieves the bearer token stored for account.
func LoadToken(account string) (string, error) {
	if account == "" {
		return "", keyring.ErrNotFound
	}
	return keyring.Get(tokenServiceName, account)
}

// LoadTokenOptional is LoadToken with a missing entry mapped to "".
func LoadTokenOptional(account string) (string, error) {
	token, err := LoadToken(account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// StoreToken persists a bearer token into the OS keychain.
func StoreToken(account, token string) error {
	if account == "" || token == "" {
		return keyring.ErrNotFound
	}
	return keyring.Set(tokenServiceName, account, token)
}

// DeleteToken removes the token for account.
func DeleteToken(account string) error {
	if account == "" {
		return keyring.ErrNotFound
	}
	return keyring.Delete(tokenServiceName, account)
}
