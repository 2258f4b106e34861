package bbs

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/rs/zerolog"
)

// Ciphersuite is an immutable cryptographic parameter set (SHA-256/XMD or
// SHAKE-256/XOF, per the BBS draft's two registered suites) together with
// a mutable, thread-safe cache of the message generators it has derived so
// far. A Ciphersuite is safe for concurrent use: the generator cache grows
// monotonically under a mutex and is never invalidated or shrunk, so a
// generator handed out once remains valid for the Ciphersuite's lifetime.
type Ciphersuite struct {
	name   string
	expand expandFn
	log    zerolog.Logger

	apiID           []byte
	generatorSeed   []byte
	seedDST         []byte
	generatorDST    []byte
	hashToScalarDST []byte
	mapMessageDST   []byte
	keyDST          []byte

	// p1 is the fixed base point BP, independent of the generator cache.
	p1 bls12381.G1Affine

	cache *generatorCache
}

// generatorCache holds the mutable, monotonically-growing state behind a
// Ciphersuite's create_generators cache. It is referenced by pointer so
// that WithLogger can return a differently-configured Ciphersuite value
// that still shares and synchronizes on the same underlying cache.
type generatorCache struct {
	mu         sync.Mutex
	generators []bls12381.G1Affine
	seedState  []byte // V from the generator-cache recurrence
}

const (
	ciphersuiteIDSHA256   = "BBS_BLS12381G1_XMD:SHA-256_SSWU_RO_H2G_HM2S_"
	ciphersuiteIDSHAKE256 = "BBS_BLS12381G1_XOF:SHAKE-256_SSWU_RO_H2G_HM2S_"
)

var (
	sha256Suite   *Ciphersuite
	shake256Suite *Ciphersuite
	initSuitesOnce sync.Once
)

func initSuites() {
	sha256Suite = mustNewCiphersuite("sha256", ciphersuiteIDSHA256, expandMessageXMD)
	shake256Suite = mustNewCiphersuite("shake256", ciphersuiteIDSHAKE256, expandMessageXOF)
}

func mustNewCiphersuite(name, id string, expand expandFn) *Ciphersuite {
	cs, err := newCiphersuite(name, id, expand)
	if err != nil {
		panic(err)
	}
	return cs
}

// SHA256 returns the shared Ciphersuite for the BBS_BLS12381G1_XMD:SHA-256
// suite.
func SHA256() *Ciphersuite {
	initSuitesOnce.Do(initSuites)
	return sha256Suite
}

// SHAKE256 returns the shared Ciphersuite for the BBS_BLS12381G1_XOF:SHAKE-256
// suite.
func SHAKE256() *Ciphersuite {
	initSuitesOnce.Do(initSuites)
	return shake256Suite
}

// NewCiphersuite looks up a ciphersuite by its registered name ("sha256" or
// "shake256") and returns the shared instance. Unknown names are an
// InvalidArgument error.
func NewCiphersuite(name string) (*Ciphersuite, error) {
	initSuitesOnce.Do(initSuites)
	switch name {
	case sha256Suite.name:
		return sha256Suite, nil
	case shake256Suite.name:
		return shake256Suite, nil
	default:
		return nil, newError(InvalidArgument, ErrUnknownCiphersuite)
	}
}

func newCiphersuite(name, id string, expand expandFn) (*Ciphersuite, error) {
	cs := &Ciphersuite{
		name:            name,
		expand:          expand,
		log:             zerolog.Nop(),
		apiID:           []byte(id),
		generatorSeed:   append([]byte(id), "MESSAGE_GENERATOR_SEED"...),
		seedDST:         append([]byte(id), "SIG_GENERATOR_SEED_"...),
		generatorDST:    append([]byte(id), "SIG_GENERATOR_DST_"...),
		hashToScalarDST: append([]byte(id), "H2S_"...),
		mapMessageDST:   append([]byte(id), "MAP_MSG_TO_SCALAR_AS_HASH_"...),
		keyDST:          append([]byte(id), "KEYGEN_DST_"...),
	}

	p1, err := hashToCurve(expand, []byte("BP_MESSAGE_GENERATOR_SEED"), append([]byte(id), "SIG_GENERATOR_SEED_"...))
	if err != nil {
		return nil, err
	}
	cs.p1 = p1

	initialSeedState, err := expand(cs.generatorSeed, cs.seedDST, 48)
	if err != nil {
		return nil, err
	}
	cs.cache = &generatorCache{
		seedState: initialSeedState,
	}

	return cs, nil
}

// WithLogger returns a copy of the Ciphersuite (sharing the same generator
// cache state, not a fresh one) configured to log generator-cache
// extensions at debug level to the given logger.
func (cs *Ciphersuite) WithLogger(logger zerolog.Logger) *Ciphersuite {
	clone := *cs
	clone.log = logger
	return &clone
}

// Name returns the ciphersuite's registered name.
func (cs *Ciphersuite) Name() string {
	return cs.name
}
