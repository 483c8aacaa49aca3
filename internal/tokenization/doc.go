/*
Package tokenization replaces sensitive cell values with reversible, self-contained tokens.

A token is the authenticated encryption of one value under the run key. Nothing is stored
besides the key: holding the key and the token is enough to recover the value.

# Architecture

  - domain: Token wire format, algorithm ids and errors
  - service: TokenCipher (Tokenizer implementation) and TokenDetector

# Token Format

Tokens are unpadded URL-safe base64 of:

	version (1) | algorithm id (1) | nonce (12) | ciphertext || tag (16)

The version and algorithm id bytes are authenticated as associated data, so a token cannot
be relabeled to another algorithm without detection.

# Non-Deterministic Tokens

Every call to Tokenize draws a fresh random nonce. The same value yields a different token
each time, which prevents frequency analysis and joins on tokenized columns.

# Basic Usage

	tc, err := service.NewTokenCipher(aeadManager, key.Material, cryptoDomain.AESGCM)
	if err != nil {
	    return err
	}

	token, err := tc.Tokenize("jane@example.com")
	value, err := tc.Detokenize(token)

Detokenize reports every failure as domain.ErrTokenInvalid: malformed or truncated input,
an unknown version or algorithm, tampering, or a token made under a different key.

# Constraints

  - Maximum plaintext size: 64 KB
  - Algorithms: AES-256-GCM (default), ChaCha20-Poly1305
*/
package tokenization
