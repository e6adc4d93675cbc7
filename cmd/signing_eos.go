package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/urfave/cli"

	"github.com/keep-network/keep-eos/internal/config"
	"github.com/keep-network/keep-eos/pkg/ecdsa"
)

// EOSSigningCommand contains the definition of the `signing eos`
// command-line subcommand and its own subcommands.
var EOSSigningCommand = cli.Command{
	Name:  "eos",
	Usage: "EOS signatures calculation",
	Subcommands: []cli.Command{
		{
			Name:        "sign",
			Usage:       "Sign a message using the operator's key",
			Description: eosSignDescription,
			Action:      EOSSign,
			ArgsUsage:   "[message]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name: "key-file,k",
					Usage: "Path to the key file. " +
						"If not provided read the path from a config file.",
				},
				cli.StringFlag{
					Name:  "output-file,o",
					Usage: "Output file for the signature",
				},
			},
		},
		{
			Name:        "verify",
			Usage:       "Verifies a signature",
			Description: eosVerifyDescription,
			Action:      EOSVerify,
			ArgsUsage:   "[eos-signature]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input-file,i",
					Usage: "Input file with the signature",
				},
			},
		},
		{
			Name:      "parse",
			Usage:     "Decodes a SIG_K1_ signature to its binary form",
			Action:    EOSParse,
			ArgsUsage: "[SIG_K1_...]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output-file,o",
					Usage: "Output file for the result",
				},
			},
		},
		{
			Name:      "format",
			Usage:     "Encodes a 65-byte binary signature as a SIG_K1_ string",
			Action:    EOSFormat,
			ArgsUsage: "[hex-compact-signature]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output-file,o",
					Usage: "Output file for the result",
				},
			},
		},
	},
}

const eosSignDescription = `Calculates an EOS signature for a given message.
The message is expected to be provided as a string, it is later hashed with SHA-256
and passed to secp256k1 ECDSA signing. Signature is always canonical and is
calculated in the EOS textual format: SIG_K1_<base58 payload>.

It requires a key to be provided in an encrypted go-ethereum keystore file. A path
to the key file can be configured in a config file or specified directly with
a 'key-file' flag.

The key file is expected to be encrypted with a password provided as ` + config.PasswordEnvVariable + `
environment variable.

The result is outputted in the format:
{
	"public_key": "<compressed public key hex>",
	"msg": "<content>",
	"sig": "<SIG_K1_ signature>",
	"version": 1
}

If 'output-file' flag is set the result will be stored in a specified file path.
`

const eosVerifyDescription = `Verifies if a signature was calculated for a message
by an owner of the public key.

It expects a signature to be provided in the format:
{
	"public_key": "<compressed public key hex>",
	"msg": "<content>",
	"sig": "<SIG_K1_ signature>",
	"version": 1
}

If 'input-file' flag is set the input will be read from a specified file path.
`

// EOSSignature is a signed message along with the signer's public key.
type EOSSignature struct {
	PublicKey string           `json:"public_key"`
	Message   string           `json:"msg"`
	Signature *ecdsa.Signature `json:"sig"`
	Version   uint             `json:"version"`
}

const eosSignatureVersion uint = 1

// EOSSign signs a string using operator's key.
func EOSSign(c *cli.Context) error {
	message := c.Args().First()
	if len(message) == 0 {
		return fmt.Errorf("invalid message")
	}

	var keyFilePath, keyFilePassword string
	// Check if `key-file` flag was set. If not read the key file path from
	// a config file.
	if keyFilePath = c.String("key-file"); len(keyFilePath) > 0 {
		keyFilePassword = os.Getenv(config.PasswordEnvVariable)
	} else {
		config, err := config.ReadConfig(c.GlobalString("config"))
		if err != nil {
			return fmt.Errorf("failed while reading config file: [%v]", err)
		}

		keyFilePath = config.Signer.KeyFile
		keyFilePassword = config.Signer.KeyFilePassword
	}

	key, err := decryptKeyFile(keyFilePath, keyFilePassword)
	if err != nil {
		return fmt.Errorf(
			"failed to read key file [%s]: [%v]",
			keyFilePath,
			err,
		)
	}

	eosSignature, err := sign(key, message)
	if err != nil {
		return err
	}

	marshaledSignature, err := json.Marshal(eosSignature)
	if err != nil {
		return fmt.Errorf("failed to marshal eos signature: [%v]", err)
	}

	return outputData(c, marshaledSignature, 0644) // store to user writeable file
}

// EOSVerify verifies if a signature was calculated by a signer with the
// given public key.
func EOSVerify(c *cli.Context) error {
	marshaledSignature, err := inputData(c)
	if err != nil {
		return err
	}

	eosSignature := &EOSSignature{}
	err = json.Unmarshal(marshaledSignature, eosSignature)
	if err != nil {
		return fmt.Errorf("failed to unmarshal eos signature: [%v]", err)
	}

	if err := verify(eosSignature); err != nil {
		return err
	}

	fmt.Printf(
		"signature verified correctly, message [%s] was signed by [%s]\n",
		eosSignature.Message,
		eosSignature.PublicKey,
	)

	return nil
}

// EOSParse prints the binary form and the components of a textual signature.
func EOSParse(c *cli.Context) error {
	text := c.Args().First()
	if len(text) == 0 {
		return fmt.Errorf("missing argument")
	}

	signature, err := ecdsa.ParseSignature(text)
	if err != nil {
		return fmt.Errorf("failed to parse signature: [%w]", err)
	}

	compact := signature.SerializeCompact()

	return outputData(
		c,
		[]byte(fmt.Sprintf(
			"compact:     %x\n"+
				"recovery id: %d\n"+
				"r:           %064x\n"+
				"s:           %064x\n"+
				"canonical:   %t",
			compact,
			signature.RecoveryID(),
			signature.R(),
			signature.S(),
			signature.IsCanonical(),
		)),
		0644,
	)
}

// EOSFormat prints the textual form of a hex-encoded binary signature.
func EOSFormat(c *cli.Context) error {
	compactHex := c.Args().First()
	if len(compactHex) == 0 {
		return fmt.Errorf("missing argument")
	}

	compact, err := hex.DecodeString(strings.TrimPrefix(compactHex, "0x"))
	if err != nil {
		return fmt.Errorf("failed to decode signature: [%v]", err)
	}

	signature, err := ecdsa.FromCompactBytes(compact)
	if err != nil {
		return fmt.Errorf("failed to decode signature: [%w]", err)
	}

	return outputData(c, []byte(signature.String()), 0644)
}

func decryptKeyFile(keyFilePath, password string) (*keystore.Key, error) {
	keyFileContent, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: [%v]", err)
	}

	key, err := keystore.DecryptKey(keyFileContent, password)
	if err != nil {
		return nil, fmt.Errorf("unable to decrypt key file: [%v]", err)
	}

	return key, nil
}

func sign(key *keystore.Key, message string) (*EOSSignature, error) {
	digest := sha256.Sum256([]byte(message))

	signer := ecdsa.NewSigner(key.PrivateKey)

	signature, err := signer.CalculateSignature(digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign: [%v]", err)
	}

	logger.Debugf(
		"calculated signature [%s] for key [%s]",
		signature,
		key.Address.Hex(),
	)

	return &EOSSignature{
		PublicKey: hex.EncodeToString(signer.PublicKey().MarshalCompressed()),
		Message:   message,
		Signature: signature,
		Version:   eosSignatureVersion,
	}, nil
}

func verify(eosSignature *EOSSignature) error {
	if eosSignature.Version != eosSignatureVersion {
		return fmt.Errorf(
			"unsupported eos signature version\n"+
				"\texpected: %d\n"+
				"\tactual:   %d",
			eosSignatureVersion,
			eosSignature.Version,
		)
	}

	if eosSignature.Signature == nil {
		return fmt.Errorf("missing signature")
	}

	if !eosSignature.Signature.IsCanonical() {
		return fmt.Errorf("signature is not canonical")
	}

	expectedPublicKey, err := hex.DecodeString(eosSignature.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to decode public key: [%v]", err)
	}

	digest := sha256.Sum256([]byte(eosSignature.Message))

	publicKey, err := eosSignature.Signature.RecoverPublicKey(digest[:])
	if err != nil {
		return fmt.Errorf("could not recover public key from signature [%v]", err)
	}

	recoveredPublicKey := publicKey.MarshalCompressed()

	if !bytes.Equal(recoveredPublicKey, expectedPublicKey) {
		return fmt.Errorf(
			"signature verification failed: invalid signer\n"+
				"\texpected: %x\n"+
				"\tactual:   %x",
			expectedPublicKey,
			recoveredPublicKey,
		)
	}

	return nil
}
