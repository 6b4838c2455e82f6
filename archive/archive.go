package archive

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/airchains-network/rollup-codec/db"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	ErrRollupNotFound = errors.New("rollup not found")
	ErrHashMismatch   = errors.New("stored rollup hash does not match decoded rollup")
)

const (
	lastRollupIDKey = "last_rollup_id"
	// viewing key streams are stored behind a marker byte so an empty stream
	// stays distinguishable from no stream
	viewingKeyMarker = 0x01
)

func rollupKey(id uint32) []byte     { return []byte(fmt.Sprintf("rollup_%d", id)) }
func viewingKeyKey(id uint32) []byte { return []byte(fmt.Sprintf("rollup_%d_vk", id)) }
func hashKey(id uint32) []byte       { return []byte(fmt.Sprintf("rollup_%d_hash", id)) }
func hashIndexKey(h common.Hash) []byte {
	return []byte("hash_" + h.Hex())
}

// Archive keeps sparse encoded rollups in a key-value store, indexed by rollup id and rollup hash.
type Archive struct {
	db  db.DB
	log *logrus.Logger
}

func New(store db.DB, log *logrus.Logger) *Archive {
	return &Archive{db: store, log: log}
}

// SaveRollup stores the compressed sparse encoding of p and its viewing key stream.
func (a *Archive) SaveRollup(p *rollup.RollupProofData) error {
	encoded, err := p.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode rollup #%d: %w", p.RollupID, err)
	}
	compressed, err := compressData(encoded)
	if err != nil {
		return fmt.Errorf("failed to compress rollup #%d: %w", p.RollupID, err)
	}

	hash := p.RollupHash()
	batch := new(leveldb.Batch)
	batch.Put(rollupKey(p.RollupID), compressed)
	if len(p.ViewingKeys) > 0 {
		batch.Put(viewingKeyKey(p.RollupID), append([]byte{viewingKeyMarker}, p.ViewingKeyData()...))
	} else {
		batch.Delete(viewingKeyKey(p.RollupID))
	}

	// a re-saved id must not stay reachable through its previous hash
	prev, err := a.db.Get(hashKey(p.RollupID))
	if err != nil {
		return fmt.Errorf("failed to get previous hash of rollup #%d: %w", p.RollupID, err)
	}
	if len(prev) == common.HashLength && common.BytesToHash(prev) != hash {
		batch.Delete(hashIndexKey(common.BytesToHash(prev)))
	}
	batch.Put(hashKey(p.RollupID), hash.Bytes())
	batch.Put(hashIndexKey(hash), binary.BigEndian.AppendUint32(nil, p.RollupID))

	last, ok, err := a.LastRollupID()
	if err != nil {
		return err
	}
	if !ok || p.RollupID > last {
		batch.Put([]byte(lastRollupIDKey), binary.BigEndian.AppendUint32(nil, p.RollupID))
	}

	if err := a.db.Write(batch); err != nil {
		return fmt.Errorf("failed to save rollup #%d: %w", p.RollupID, err)
	}

	a.log.Infof("Saved rollup #%d (%d bytes, %d compressed) hash=%s",
		p.RollupID, len(encoded), len(compressed), hash.Hex())
	return nil
}

// LoadRollup decodes the rollup stored under id and checks it against its stored hash.
func (a *Archive) LoadRollup(id uint32) (*rollup.RollupProofData, error) {
	compressed, err := a.db.Get(rollupKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get rollup #%d: %w", id, err)
	}
	if compressed == nil {
		return nil, fmt.Errorf("%w: #%d", ErrRollupNotFound, id)
	}
	encoded, err := decompressData(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress rollup #%d: %w", id, err)
	}

	var vkData []byte
	stored, err := a.db.Get(viewingKeyKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get viewing keys of rollup #%d: %w", id, err)
	}
	if len(stored) > 0 && stored[0] == viewingKeyMarker {
		vkData = stored[1:]
	}

	p, err := rollup.Decode(encoded, vkData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rollup #%d: %w", id, err)
	}

	hash, err := a.db.Get(hashKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get hash of rollup #%d: %w", id, err)
	}
	if !bytes.Equal(hash, p.RollupHash().Bytes()) {
		return nil, fmt.Errorf("%w: #%d", ErrHashMismatch, id)
	}
	a.log.Debugf("Loaded rollup #%d hash=%s", id, p.RollupHash().Hex())
	return p, nil
}

// RollupIDByHash looks up the id of the rollup with the given rollup hash.
func (a *Archive) RollupIDByHash(hash common.Hash) (uint32, error) {
	v, err := a.db.Get(hashIndexKey(hash))
	if err != nil {
		return 0, fmt.Errorf("failed to look up rollup hash %s: %w", hash.Hex(), err)
	}
	if len(v) != 4 {
		return 0, fmt.Errorf("%w: hash %s", ErrRollupNotFound, hash.Hex())
	}
	return binary.BigEndian.Uint32(v), nil
}

// LastRollupID returns the highest rollup id saved so far. ok is false for an empty archive.
func (a *Archive) LastRollupID() (id uint32, ok bool, err error) {
	v, err := a.db.Get([]byte(lastRollupIDKey))
	if err != nil {
		return 0, false, fmt.Errorf("failed to get last rollup id: %w", err)
	}
	if len(v) != 4 {
		return 0, false, nil
	}
	return binary.BigEndian.Uint32(v), true, nil
}

func compressData(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressData(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}
