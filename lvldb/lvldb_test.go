// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/chainbridge-transfer/lvldb"
)

type LVLDBTestSuite struct {
	suite.Suite
	db *lvldb.LVLDB
}

func TestRunLVLDBTestSuite(t *testing.T) {
	suite.Run(t, new(LVLDBTestSuite))
}

func (s *LVLDBTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(filepath.Join(s.T().TempDir(), "history"))
	s.Nil(err)
	s.db = db
}

func (s *LVLDBTestSuite) Test_NewLvlDB_EmptyPath() {
	_, err := lvldb.NewLvlDB("")

	s.NotNil(err)
}

func (s *LVLDBTestSuite) Test_GetByKey_Missing() {
	_, err := s.db.GetByKey([]byte("missing"))

	s.ErrorIs(err, leveldb.ErrNotFound)
}

func (s *LVLDBTestSuite) Test_SetByKey_Overwrites() {
	s.Nil(s.db.SetByKey([]byte("key"), []byte("first")))
	s.Nil(s.db.SetByKey([]byte("key"), []byte("second")))

	v, err := s.db.GetByKey([]byte("key"))

	s.Nil(err)
	s.Equal([]byte("second"), v)
}

func (s *LVLDBTestSuite) Test_GetByPrefix() {
	s.Nil(s.db.SetByKey([]byte("source:1:destination:2:depositNonce:2"), []byte("b")))
	s.Nil(s.db.SetByKey([]byte("source:1:destination:2:depositNonce:1"), []byte("a")))
	s.Nil(s.db.SetByKey([]byte("source:2:destination:1:depositNonce:1"), []byte("c")))

	values, err := s.db.GetByPrefix([]byte("source:1:destination:2:"))

	s.Nil(err)
	s.Equal([][]byte{[]byte("a"), []byte("b")}, values)
}
