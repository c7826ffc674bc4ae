package trade

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// signer signs root hashes with a local EVM private key, producing the same
// personal-message signature a wallet would.
type signer struct {
	key *ecdsa.PrivateKey
}

// newSigner builds a signer from the private-key flag. Returns nil without
// error when no key is configured, submission is then left to the caller.
func newSigner() (*signer, error) {
	privateHex := strings.TrimPrefix(v.GetString(privateKeyFlag), "0x")
	if privateHex == "" {
		return nil, nil //nolint:nilnil
	}

	key, err := crypto.HexToECDSA(privateHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}

	return &signer{key: key}, nil
}

func (s *signer) address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

// signRootHash signs the raw root hash bytes as an EIP-191 personal message.
// The recovery id is shifted to the 27/28 convention wallets use.
func (s *signer) signRootHash(rootHash string) (string, error) {
	hashBytes, err := hex.DecodeString(strings.TrimPrefix(rootHash, "0x"))
	if err != nil {
		return "", errors.Wrap(err, "root hash is not valid hex")
	}

	sig, err := crypto.Sign(accounts.TextHash(hashBytes), s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign root hash")
	}

	sig[crypto.RecoveryIDOffset] += 27

	return "0x" + hex.EncodeToString(sig), nil
}

// ownerAddress resolves the owner address flag, falling back to the address
// derived from the private key.
func ownerAddress(s *signer) (string, error) {
	if owner := v.GetString(ownerFlag); owner != "" {
		return owner, nil
	}

	if s == nil {
		return "", errors.New("no owner address given and no private key to derive one from")
	}

	return s.address(), nil
}
