// Command mlsagsign is a demonstration driver for the mlsag core: it builds
// a synthetic ring with a known discrete log at the signer's position,
// signs it in Simple or Full mode, and logs the resulting signature shape.
// It is not a wallet, a transaction builder, or a key-management tool.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"mlsag.dev/core/mlsag"
	"mlsag.dev/core/xed25519"
)

func main() {
	cols := flag.Int("cols", 11, "ring width (cols >= 2)")
	index := flag.Int("index", 3, "signer position within the ring (0 <= index < cols)")
	mode := flag.String("mode", "simple", "signing mode: simple or full")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if *index < 0 || *index >= *cols {
		log.Fatal().Int("cols", *cols).Int("index", *index).Msg("index out of range")
	}

	log.Info().Int("cols", *cols).Int("index", *index).Str("mode", *mode).Msg("building ring")

	message := make([]byte, 32)
	for i := range message {
		message[i] = 0x01
	}

	start := time.Now()

	var (
		sig *mlsag.Signature
		err error
	)
	switch *mode {
	case "simple":
		sig, err = runSimple(message, *cols, *index)
	case "full":
		sig, err = runFull(message, *cols, *index)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode, want simple or full")
	}

	elapsed := time.Since(start)

	if err != nil {
		if mlsagErr, ok := err.(*mlsag.Error); ok {
			log.Error().Str("kind", mlsagErr.Kind.String()).Err(err).Msg("signing failed")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("signing failed")
	}

	log.Info().
		Int("signature_bytes", len(sig.Buf)).
		Int("key_images", len(sig.KeyImages)).
		Dur("elapsed", elapsed).
		Msg("signed")
}

func runSimple(message []byte, cols, index int) (*mlsag.Signature, error) {
	pubs := make([]mlsag.RingEntry, cols)

	h := xed25519.HashToPoint([]byte("mlsagsign demo commitment base"))

	var signerDest, signerMask *xed25519.Scalar

	for i := 0; i < cols; i++ {
		dest, err := xed25519.RandomScalar()
		if err != nil {
			return nil, err
		}
		mask, err := xed25519.RandomScalar()
		if err != nil {
			return nil, err
		}

		destPoint := xed25519.Identity().ScalarMultBase(dest)
		commitment := xed25519.Identity().Add(
			xed25519.Identity().ScalarMultBase(mask),
			xed25519.Identity().ScalarMult(mask, h),
		)
		pubs[i] = mlsag.RingEntry{Dest: destPoint.Encode(), Commitment: commitment.Encode()}

		if i == index {
			signerDest, signerMask = dest, mask
		}
	}

	a, err := xed25519.RandomScalar()
	if err != nil {
		return nil, err
	}
	cout := xed25519.Identity().ScalarMultBase(a)

	inSk := mlsag.CtKey{Dest: signerDest, Mask: signerMask}
	return mlsag.BuildSimple(message, pubs, inSk, a, cout, nil, index, nil)
}

func runFull(message []byte, cols, index int) (*mlsag.Signature, error) {
	pubs := make([]mlsag.RingEntry, cols)

	var signerDest, signerMask *xed25519.Scalar

	for i := 0; i < cols; i++ {
		dest, err := xed25519.RandomScalar()
		if err != nil {
			return nil, err
		}
		mask, err := xed25519.RandomScalar()
		if err != nil {
			return nil, err
		}

		destPoint := xed25519.Identity().ScalarMultBase(dest)
		commitment := xed25519.Identity().ScalarMultBase(mask)
		pubs[i] = mlsag.RingEntry{Dest: destPoint.Encode(), Commitment: commitment.Encode()}

		if i == index {
			signerDest, signerMask = dest, mask
		}
	}

	outCommitment := xed25519.Identity().ScalarMultBase(signerMask).Encode()
	inSk := []mlsag.CtKey{{Dest: signerDest, Mask: signerMask}}

	return mlsag.BuildFull(
		message,
		pubs,
		inSk,
		[]*xed25519.Scalar{signerMask},
		[][32]byte{outCommitment},
		nil,
		index,
		nil,
		nil,
	)
}
