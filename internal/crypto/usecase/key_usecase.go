package usecase

import (
	"context"
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/datamask/internal/crypto/domain"
	cryptoService "github.com/allisson/datamask/internal/crypto/service"
	apperrors "github.com/allisson/datamask/internal/errors"
	customValidation "github.com/allisson/datamask/internal/validation"
)

// keyUseCase implements KeyUseCase on top of a KeyRepository.
// When kmsKeyURI is set, keys are wrapped by the KMS before they are stored.
type keyUseCase struct {
	keyRepo    KeyRepository
	kmsService cryptoService.KMSService
	kmsKeyURI  string
}

// NewKeyUseCase creates a new KeyUseCase. kmsKeyURI may be empty to store keys unwrapped.
func NewKeyUseCase(
	keyRepo KeyRepository,
	kmsService cryptoService.KMSService,
	kmsKeyURI string,
) KeyUseCase {
	return &keyUseCase{
		keyRepo:    keyRepo,
		kmsService: kmsService,
		kmsKeyURI:  kmsKeyURI,
	}
}

// Obtain loads the key at location or creates it on first use.
// If a concurrent run creates the key between the load and the create, the winner's key is loaded.
func (k *keyUseCase) Obtain(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	key, err := k.Load(ctx, location)
	if err == nil {
		return key, nil
	}
	if !apperrors.Is(err, cryptoDomain.ErrKeyNotFound) {
		return nil, err
	}

	key, err = k.Create(ctx, location)
	if apperrors.Is(err, cryptoDomain.ErrKeyAlreadyExists) {
		return k.Load(ctx, location)
	}
	return key, err
}

// Load reads and decodes the key at location, unwrapping it with the KMS when needed.
func (k *keyUseCase) Load(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	if err := validateLocation(location); err != nil {
		return nil, err
	}

	data, err := k.keyRepo.Load(ctx, location)
	if err != nil {
		return nil, err
	}

	wrapped := cryptoDomain.IsWrappedKey(data)
	var material []byte
	if wrapped {
		material, err = k.unwrap(ctx, data)
	} else {
		material, err = cryptoDomain.DecodeKey(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load key from %s: %w", location, err)
	}
	defer cryptoDomain.Zero(material)

	key, err := cryptoDomain.NewKey(material)
	if err != nil {
		return nil, fmt.Errorf("failed to load key from %s: %w", location, err)
	}
	key.Wrapped = wrapped
	return key, nil
}

// Create generates a new key and stores it at location.
func (k *keyUseCase) Create(ctx context.Context, location string) (*cryptoDomain.Key, error) {
	if err := validateLocation(location); err != nil {
		return nil, err
	}

	key, err := cryptoDomain.GenerateKey()
	if err != nil {
		return nil, err
	}

	encoded := cryptoDomain.EncodeKey(key.Material)
	if k.kmsKeyURI != "" {
		ciphertext, err := k.kmsService.Wrap(ctx, k.kmsKeyURI, key.Material)
		if err != nil {
			key.Close()
			return nil, fmt.Errorf("%w: wrap key: %v", cryptoDomain.ErrKeyStoreIO, err)
		}
		encoded = cryptoDomain.EncodeWrappedKey(ciphertext)
		key.Wrapped = true
	}

	if err := k.keyRepo.Create(ctx, location, encoded); err != nil {
		key.Close()
		return nil, err
	}
	return key, nil
}

func (k *keyUseCase) unwrap(ctx context.Context, data []byte) ([]byte, error) {
	if k.kmsKeyURI == "" {
		return nil, cryptoDomain.ErrKMSNotConfigured
	}

	ciphertext, err := cryptoDomain.DecodeWrappedKey(data)
	if err != nil {
		return nil, err
	}

	material, err := k.kmsService.Unwrap(ctx, k.kmsKeyURI, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap key: %v", cryptoDomain.ErrKeyStoreIO, err)
	}
	return material, nil
}

func validateLocation(location string) error {
	err := validation.Validate(location,
		validation.Required.Error("key location is required"),
		customValidation.NotBlank.Error("key location must not be blank"),
	)
	return customValidation.WrapValidationError(err)
}
