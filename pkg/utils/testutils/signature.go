package testutils

import (
	cecdsa "crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/keep-network/keep-eos/pkg/ecdsa"
)

// VerifySignature validates that a recoverable signature was calculated over
// hash by the owner of expectedPublicKey. The key is recovered twice: with
// go-ethereum's `SigToPub`, which works on `r || s || v` signatures, and with
// the signature's own RecoverPublicKey. Both have to match.
func VerifySignature(
	t *testing.T,
	hash []byte,
	signature *ecdsa.Signature,
	expectedPublicKey *cecdsa.PublicKey,
) {
	t.Helper()

	compact := signature.Compact()
	serializedSignature := append(compact[:], byte(signature.RecoveryID()))

	publicKey, err := crypto.SigToPub(hash, serializedSignature)
	if err != nil {
		t.Fatalf("failed to get public key from signature: [%v]", err)
	}

	recoveredPublicKey, err := signature.RecoverPublicKey(hash)
	if err != nil {
		t.Fatalf("failed to recover public key: [%v]", err)
	}

	for _, actualPublicKey := range []*cecdsa.PublicKey{
		publicKey,
		(*cecdsa.PublicKey)(recoveredPublicKey),
	} {
		if expectedPublicKey.X.Cmp(actualPublicKey.X) != 0 ||
			expectedPublicKey.Y.Cmp(actualPublicKey.Y) != 0 {
			t.Errorf(
				"invalid public key:\nexpected: [%x]\nactual:   [%x]\n",
				crypto.FromECDSAPub(expectedPublicKey),
				crypto.FromECDSAPub(actualPublicKey),
			)
		}
	}
}
