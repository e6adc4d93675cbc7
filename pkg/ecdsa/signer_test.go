package ecdsa

import (
	cecdsa "crypto/ecdsa"
	crand "crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestCalculateSignature(t *testing.T) {
	privateKey, err := GenerateKey(crand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	signer := NewSigner(privateKey)

	for i := 0; i < 8; i++ {
		hash := make([]byte, 32)
		if _, err := crand.Read(hash); err != nil {
			t.Fatal(err)
		}

		signature, err := signer.CalculateSignature(hash)
		if err != nil {
			t.Fatal(err)
		}

		if !signature.IsCanonical() {
			t.Errorf("signature [%s] is not canonical", signature)
		}

		publicKey, err := crypto.SigToPub(hash, toEthereumSignature(signature))
		if err != nil {
			t.Fatal(err)
		}

		if signer.PublicKey().X.Cmp(publicKey.X) != 0 ||
			signer.PublicKey().Y.Cmp(publicKey.Y) != 0 {
			t.Fatalf(
				"unexpected public key:\nexpected: [%x]\nactual:   [%x]\n",
				signer.PublicKey().Marshal(),
				crypto.FromECDSAPub(publicKey),
			)
		}
	}
}

func TestCalculateSignatureDeterministic(t *testing.T) {
	signer := newTestSigner(8)

	hash, _ := hex.DecodeString("54a6483b8aca55c9df2a35baf71d9965ddfd623468d81d51229bd5eb7d1e1c1b")

	first, err := signer.CalculateSignature(hash)
	if err != nil {
		t.Fatal(err)
	}

	second, err := signer.CalculateSignature(hash)
	if err != nil {
		t.Fatal(err)
	}

	if !first.Equal(second) {
		t.Errorf(
			"signatures differ\nfirst:  [%s]\nsecond: [%s]",
			first,
			second,
		)
	}
}

func TestRecoverPublicKey(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	hash := crypto.Keccak256([]byte("eos signature"))

	// go-ethereum returns signatures in `r || s || v` form with `v` in {0, 1}.
	ethereumSignature, err := crypto.Sign(hash, privateKey)
	if err != nil {
		t.Fatal(err)
	}

	var compact [CompactSize]byte
	compact[0] = ethereumSignature[64]
	copy(compact[1:], ethereumSignature[:64])

	signature, err := FromCompact(compact)
	if err != nil {
		t.Fatal(err)
	}

	publicKey, err := signature.RecoverPublicKey(hash)
	if err != nil {
		t.Fatal(err)
	}

	expectedPublicKey := crypto.CompressPubkey(&privateKey.PublicKey)
	if hex.EncodeToString(publicKey.MarshalCompressed()) != hex.EncodeToString(expectedPublicKey) {
		t.Errorf(
			"unexpected public key\nexpected: [%x]\nactual:   [%x]",
			expectedPublicKey,
			publicKey.MarshalCompressed(),
		)
	}

	otherHash := crypto.Keccak256([]byte("other message"))
	otherPublicKey, err := signature.RecoverPublicKey(otherHash)
	if err == nil &&
		hex.EncodeToString(otherPublicKey.MarshalCompressed()) == hex.EncodeToString(expectedPublicKey) {
		t.Errorf("public key recovered for a different message")
	}
}

func TestRecoverPublicKeyFromSigner(t *testing.T) {
	signer := newTestSigner(8)

	hash, _ := hex.DecodeString("54a6483b8aca55c9df2a35baf71d9965ddfd623468d81d51229bd5eb7d1e1c1b")

	signature, err := signer.CalculateSignature(hash)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseSignature(signature.String())
	if err != nil {
		t.Fatal(err)
	}

	publicKey, err := parsed.RecoverPublicKey(hash)
	if err != nil {
		t.Fatal(err)
	}

	if signer.PublicKey().X.Cmp(publicKey.X) != 0 ||
		signer.PublicKey().Y.Cmp(publicKey.Y) != 0 {
		t.Errorf(
			"unexpected public key\nexpected: [%x]\nactual:   [%x]",
			signer.PublicKey().Marshal(),
			publicKey.Marshal(),
		)
	}
}

func newTestSigner(d int64) *Signer {
	curve := crypto.S256()
	k := big.NewInt(d)

	privateKey := new(cecdsa.PrivateKey)
	privateKey.PublicKey.Curve = curve
	privateKey.D = k
	privateKey.PublicKey.X, privateKey.PublicKey.Y = curve.ScalarBaseMult(k.Bytes())

	return NewSigner(privateKey)
}

func toEthereumSignature(signature *Signature) []byte {
	compact := signature.Compact()
	return append(compact[:], byte(signature.RecoveryID()))
}
