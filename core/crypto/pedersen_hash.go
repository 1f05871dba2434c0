package crypto

import (
	"github.com/NethermindEth/pedersen/core/crypto/pedersenhash"
	"github.com/NethermindEth/pedersen/core/felt"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const DefaultCacheSize = 1 << 16

var defaultHasher = MustNewHasher(DefaultCacheSize, prometheus.DefaultRegisterer)

type lruKey struct {
	x, y felt.Felt
}

// Hasher memoises Pedersen hashes of recently seen pairs. It is safe for
// concurrent use.
type Hasher struct {
	cache *lru.Cache
	hits  *prometheus.CounterVec
}

// NewHasher returns a Hasher keeping at most cacheSize results. Cache hits and
// misses are counted on reg; a nil reg leaves the counter unregistered.
func NewHasher(cacheSize int, reg prometheus.Registerer) (*Hasher, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "pedersen cache")
	}
	return &Hasher{
		cache: cache,
		hits: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pedersen_cache",
			Help: "Pedersen hash cache lookups",
		}, []string{"hit"}),
	}, nil
}

func MustNewHasher(cacheSize int, reg prometheus.Registerer) *Hasher {
	h, err := NewHasher(cacheSize, reg)
	if err != nil {
		panic(err)
	}
	return h
}

// Pedersen implements the [Pedersen hash].
//
// [Pedersen hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#pedersen_hash
func (h *Hasher) Pedersen(a, b felt.Felt) (felt.Felt, error) {
	key := lruKey{x: a, y: b}

	if res, ok := h.cache.Get(key); ok {
		h.hits.WithLabelValues("true").Inc()
		return res.(felt.Felt), nil
	}

	result, err := pedersenhash.HashFelts(a, b)
	if err != nil {
		return felt.Zero, err
	}
	h.cache.Add(key, result)
	h.hits.WithLabelValues("false").Inc()
	return result, nil
}

// PedersenArray implements [Pedersen array hashing].
//
// [Pedersen array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func (h *Hasher) PedersenArray(elems ...felt.Felt) (felt.Felt, error) {
	digest := h.NewDigest()
	if err := digest.Update(elems...); err != nil {
		return felt.Zero, err
	}
	return digest.Finish()
}

func (h *Hasher) NewDigest() *PedersenDigest {
	return &PedersenDigest{hasher: h}
}

func (h *Hasher) Len() int {
	return h.cache.Len()
}

// Pedersen hashes a and b through the process-wide cache.
func Pedersen(a, b felt.Felt) (felt.Felt, error) {
	return defaultHasher.Pedersen(a, b)
}

// PedersenArray hashes elems through the process-wide cache.
func PedersenArray(elems ...felt.Felt) (felt.Felt, error) {
	return defaultHasher.PedersenArray(elems...)
}

// PedersenDigest is an incremental array hash whose pair hashes go through a
// Hasher's cache. The zero value uses the process-wide cache.
type PedersenDigest struct {
	hasher *Hasher
	digest felt.Felt
	count  uint64
}

func (d *PedersenDigest) Update(elems ...felt.Felt) error {
	acc := d.digest
	for idx := range elems {
		var err error
		if acc, err = d.pedersen(acc, elems[idx]); err != nil {
			return err
		}
	}
	d.digest = acc
	d.count += uint64(len(elems))
	return nil
}

func (d *PedersenDigest) Finish() (felt.Felt, error) {
	return d.pedersen(d.digest, felt.FromUint64(d.count))
}

func (d *PedersenDigest) pedersen(a, b felt.Felt) (felt.Felt, error) {
	if d.hasher == nil {
		return Pedersen(a, b)
	}
	return d.hasher.Pedersen(a, b)
}
