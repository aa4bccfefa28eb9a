package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gtank/cryptopasta"
)

const (
	minSecretLen = 16

	tagEncryption = "ledjer blob encryption"
	tagSignature  = "ledjer blob signature"
)

// NewRandomKey generates a random url-safe secret suitable for Keys.
func NewRandomKey() (string, error) {
	key := &[33]byte{}
	_, err := io.ReadFull(rand.Reader, key[:])
	return base64.RawURLEncoding.EncodeToString(key[:]), err
}

// Keys holds the encryption and signing keys derived from one secret.
type Keys struct {
	encryption *[32]byte
	signature  *[32]byte
}

// DeriveKeys turns a secret into a pair of independent 32 byte keys.
func DeriveKeys(secret string) (*Keys, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("secret too short, want at least %d chars", minSecretLen)
	}
	return &Keys{
		encryption: toKey(cryptopasta.Hash(tagEncryption, []byte(secret))),
		signature:  toKey(cryptopasta.Hash(tagSignature, []byte(secret))),
	}, nil
}

// Seal encrypts plaintext and attaches a HMAC signature. The result is
// "<cyphertext>.<signature>", both base64 (raw url) encoded.
func (k *Keys) Seal(plaintext []byte) ([]byte, error) {
	cyphertext, err := cryptopasta.Encrypt(plaintext, k.encryption)
	if err != nil {
		return nil, err
	}

	signature := cryptopasta.GenerateHMAC(cyphertext, k.signature)

	return []byte(fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	)), nil
}

// Open is the inverse of Seal, checking the HMAC before decrypting.
func (k *Keys) Open(sealed []byte) ([]byte, error) {
	bits := bytes.SplitN(sealed, []byte("."), 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("decryption failed, sealed data invalid")
	}

	cypher, err := base64.RawURLEncoding.DecodeString(string(bits[0]))
	if err != nil {
		return nil, err
	}

	signature, err := base64.RawURLEncoding.DecodeString(string(bits[1]))
	if err != nil {
		return nil, err
	}

	if !cryptopasta.CheckHMAC(cypher, signature, k.signature) {
		return nil, fmt.Errorf("signature validation failed")
	}

	return cryptopasta.Decrypt(cypher, k.encryption)
}

// toKey copies a hash into the *[32]byte form cryptopasta wants.
func toKey(b []byte) *[32]byte {
	data := &[32]byte{}
	copy(data[:], b)
	return data
}
