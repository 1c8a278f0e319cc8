package jwt

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/ssh"
)

var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrUnsupportedKey     = errors.New("only RSA keys are supported")
	ErrPassphraseRequired = errors.New("private key is passphrase protected")
)

// LoadPrivateKey reads an RSA private key from path. PKCS#1, PKCS#8 and
// OpenSSH encodings are accepted, encrypted ones with passphrase.
func LoadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := ssh.ParseRawPrivateKey(data)
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(data, []byte(passphrase))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	key, ok := raw.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}

	return key, nil
}

// LoadPublicKey reads an RSA public key from path, either PEM (PKIX,
// PKCS#1 or a certificate) or a single authorized_keys line.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("ssh-")) {
		return parseAuthorizedKey(data)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(data)
	if errors.Is(err, jwt.ErrNotRSAPublicKey) {
		return nil, ErrUnsupportedKey
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return key, nil
}

func parseAuthorizedKey(data []byte) (*rsa.PublicKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	cpk, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	key, ok := cpk.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}

	return key, nil
}
