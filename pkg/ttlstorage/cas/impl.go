/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cas

import (
	"errors"
	"fmt"

	"github.com/gocql/gocql"
)

func (s *storage) InsertIfNotExist(key string, val string, ttlSeconds int) (bool, error) {
	stmt := fmt.Sprintf("INSERT INTO %s (key, value) VALUES (?, ?) IF NOT EXISTS USING TTL ?", s.table)
	return applied(s.session.Query(stmt, key, val, ttlSeconds))
}

func (s *storage) CompareAndSwap(key string, oldVal string, newVal string, ttlSeconds int) (bool, error) {
	stmt := fmt.Sprintf("UPDATE %s USING TTL ? SET value = ? WHERE key = ? IF value = ?", s.table)
	return applied(s.session.Query(stmt, ttlSeconds, newVal, key, oldVal))
}

func (s *storage) CompareAndDelete(key string, val string) (bool, error) {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE key = ? IF value = ?", s.table)
	return applied(s.session.Query(stmt, key, val))
}

func (s *storage) Get(key string) (ok bool, val string, err error) {
	stmt := fmt.Sprintf("SELECT value FROM %s WHERE key = ?", s.table)
	err = s.session.Query(stmt, key).Consistency(gocql.Quorum).Scan(&val)
	if errors.Is(err, gocql.ErrNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return true, val, nil
}

// applied executes a lightweight transaction, the previous row is scanned into a throwaway map
func applied(q *gocql.Query) (bool, error) {
	ok, err := q.MapScanCAS(map[string]interface{}{})
	if err != nil {
		return false, fmt.Errorf("lightweight transaction failed: %w", err)
	}
	return ok, nil
}
