package service

import (
	"context"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"

	// KMS drivers selectable through the key URI scheme.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open KMS keeper for scheme %q: %s",
			keyURIScheme(keyURI),
			redactKeyURI(err.Error(), keyURI),
		)
	}
	return keeper, nil
}

// Wrap encrypts plaintext with the KMS key at keyURI.
func (k *kmsService) Wrap(ctx context.Context, keyURI string, plaintext []byte) ([]byte, error) {
	return k.withKeeper(ctx, keyURI, "encrypt", func(keeper cryptoDomain.KMSKeeper) ([]byte, error) {
		return keeper.Encrypt(ctx, plaintext)
	})
}

// Unwrap decrypts ciphertext produced by Wrap with the same keyURI.
func (k *kmsService) Unwrap(ctx context.Context, keyURI string, ciphertext []byte) ([]byte, error) {
	return k.withKeeper(ctx, keyURI, "decrypt", func(keeper cryptoDomain.KMSKeeper) ([]byte, error) {
		return keeper.Decrypt(ctx, ciphertext)
	})
}

// withKeeper opens a keeper, runs op and closes the keeper. A close failure is reported
// only when op succeeded.
func (k *kmsService) withKeeper(
	ctx context.Context,
	keyURI, action string,
	op func(keeper cryptoDomain.KMSKeeper) ([]byte, error),
) (out []byte, err error) {
	keeper, err := k.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && err == nil {
			out, err = nil, fmt.Errorf("failed to close KMS keeper: %w", closeErr)
		}
	}()

	out, err = op(keeper)
	if err != nil {
		return nil, fmt.Errorf("failed to %s with KMS: %w", action, err)
	}
	return out, nil
}

func keyURIScheme(keyURI string) string {
	scheme, _, found := strings.Cut(keyURI, "://")
	if !found {
		return ""
	}
	return scheme
}

// redactKeyURI removes keyURI from msg. base64key:// URIs embed key material and driver
// errors echo the URL they failed to open.
func redactKeyURI(msg, keyURI string) string {
	_, rest, found := strings.Cut(keyURI, "://")
	if !found || rest == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, keyURI, keyURIScheme(keyURI)+"://REDACTED")
	return strings.ReplaceAll(msg, rest, "REDACTED")
}
