// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LVLDB opens the database at path for each operation so that concurrent
// CLI invocations do not hold the file lock between calls
type LVLDB struct {
	path string
}

func NewLvlDB(path string) (*LVLDB, error) {
	if path == "" {
		return nil, errors.New("levelDB path empty")
	}
	return &LVLDB{path: path}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	d, err := db.openFile()
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return d.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	d, err := db.openFile()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Put(key, value, nil)
}

// GetByPrefix returns every value whose key starts with prefix, in key order
func (db *LVLDB) GetByPrefix(prefix []byte) ([][]byte, error) {
	d, err := db.openFile()
	if err != nil {
		return nil, err
	}
	defer d.Close()

	iter := d.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var values [][]byte
	for iter.Next() {
		v := make([]byte, len(iter.Value()))
		copy(v, iter.Value())
		values = append(values, v)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "levelDB iteration fail")
	}
	return values, nil
}

func (db *LVLDB) openFile() (*leveldb.DB, error) {
	ldb, err := leveldb.OpenFile(db.path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}
	return ldb, nil
}
