package records

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var (
	recordPrefix = []byte("record/")
	sequenceKey  = []byte("seq/record")
)

// Local keeps records in an embedded badger database so the game works
// without a server.
type Local struct {
	db  *badger.DB
	seq *badger.Sequence
}

func OpenLocal(path string) (*Local, error) {
	return openLocal(badger.DefaultOptions(path))
}

// OpenInMemory keeps records only for the lifetime of the process.
func OpenInMemory() (*Local, error) {
	return openLocal(badger.DefaultOptions("").WithInMemory(true))
}

func openLocal(opts badger.Options) (*Local, error) {
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("unable to open records db: %w", err)
	}
	seq, err := db.GetSequence(sequenceKey, 16)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create record sequence: %w", err)
	}
	return &Local{db: db, seq: seq}, nil
}

func recordKey(id uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], id)
	return key
}

func (l *Local) Save(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := l.seq.Next()
	if err != nil {
		return err
	}
	// badger sequences start at 0
	rec.RecordId = int(id) + 1
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	err = l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(id), payload)
	})
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"record_id": rec.RecordId,
		"player":    rec.Player,
		"outcome":   rec.Outcome,
	}).Debug("record saved")
	return nil
}

func (l *Local) Highscores(ctx context.Context, filter Filter) ([]Record, error) {
	var rs []Record
	err := l.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(recordPrefix); it.ValidForPrefix(recordPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			if filter.Match(rec) {
				rs = append(rs, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortHighscores(rs)
	if filter.Limit > 0 && len(rs) > filter.Limit {
		rs = rs[:filter.Limit]
	}
	return rs, nil
}

func (l *Local) Close() error {
	if err := l.seq.Release(); err != nil {
		l.db.Close()
		return err
	}
	return l.db.Close()
}
