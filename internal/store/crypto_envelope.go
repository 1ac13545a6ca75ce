package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"nocheckin/internal/util/memzero"
)

const (
	// The current supported version of the sealed payload format.
	sealedFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or a sealed
	// payload has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted profile")
	// ErrPassphraseRequired is returned when reading a sealed payload without
	// a passphrase.
	ErrPassphraseRequired = errors.New("profile is sealed; a passphrase is required")
)

// blob is the stored JSON structure holding the ciphertext and KDF parameters.
// A payload without a version is plaintext written before sealing was enabled.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters.
type kdfParams struct{ N, R, P int }

// Tunables for scrypt key derivation.
func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a key from passphrase and seals raw into a JSON blob. The
// bucket name is bound as additional data so payloads cannot be swapped.
func seal(passphrase string, raw []byte, ad string, kp kdfParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is single use
	ct := aead.Seal(nil, nonce[:], raw, []byte(ad))

	return json.Marshal(blob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      kp.N,
		R:      kp.R,
		P:      kp.P,
		Cipher: ct,
	})
}

// open reverses seal. Unversioned payloads are returned unchanged.
func open(passphrase string, b []byte, ad string) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V == 0 {
		return b, nil
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed payload version %d", bl.V)
	}
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, []byte(ad))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
