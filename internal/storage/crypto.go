package storage

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

// ErrSealedDataCorrupt is returned when a sealed value cannot be opened.
var ErrSealedDataCorrupt = errors.New("sealed data corrupt or wrong device key")

const nonceSize = 24

// deriveKey stretches the device secret into a secretbox key via HKDF-SHA256.
func deriveKey(deviceSecret []byte) [32]byte {
	var key [32]byte
	h := hkdf.New(sha256.New, deviceSecret, nil, []byte("account-store"))
	if _, err := io.ReadFull(h, key[:]); err != nil {
		// HKDF over SHA-256 never fails for 32 bytes
		panic(err)
	}
	return key
}

// seal encrypts plaintext with a random nonce prepended to the box.
func seal(plaintext []byte, key *[32]byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, key), nil
}

// open decrypts a box produced by seal.
func open(sealed []byte, key *[32]byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, ErrSealedDataCorrupt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, key)
	if !ok {
		return nil, ErrSealedDataCorrupt
	}
	return plaintext, nil
}
