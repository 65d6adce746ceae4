package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

const histQuery = `SELECT type, jet, var1, var2, edges, bins
FROM hist
INNER JOIN axes ON hist.axis = axes.id
WHERE
	isp = ? AND
	photon_cuts = ? AND
	central_higgs = ? AND
	nsubjets = ? AND
	var1 = ?`

type Storage struct {
	AuthToken string
}

var remoteSchemes = []string{"libsql://", "https://", "http://", "wss://", "ws://"}

// DataSource maps a database location to a driver name and its DSN. Local
// files are opened read-only so that a missing file fails instead of being
// created empty.
func (s *Storage) DataSource(location string) (string, string, error) {
	for _, scheme := range remoteSchemes {
		if !strings.HasPrefix(location, scheme) {
			continue
		}
		if s.AuthToken == "" {
			return "libsql", location, nil
		}
		u, err := url.Parse(location)
		if err != nil {
			return "", "", fmt.Errorf("bad database url %v: %w", location, err)
		}
		query := u.Query()
		query.Set("authToken", s.AuthToken)
		u.RawQuery = query.Encode()
		return "libsql", u.String(), nil
	}

	if !strings.HasPrefix(location, "file:") {
		// ? and # in a plain path would be read as URI delimiters
		path := (&url.URL{Path: location}).EscapedPath()
		return "sqlite", "file:" + path + "?mode=ro", nil
	}

	location, _, _ = strings.Cut(location, "#")
	path, rawQuery, _ := strings.Cut(location, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("bad database uri %v: %w", location, err)
	}
	switch {
	case query.Has("mode"):
		return "sqlite", location, nil
	case rawQuery == "":
		return "sqlite", path + "?mode=ro", nil
	default:
		return "sqlite", location + "&mode=ro", nil
	}
}

func (s *Storage) ConnectDb(ctx context.Context, location string) (*sql.DB, error) {
	driver, dsn, err := s.DataSource(location)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	// sql.Open is lazy, ping to surface a missing or corrupt file right here
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *Storage) FetchHists(ctx context.Context, db *sql.DB, filter Filter) ([]Row, error) {
	rows, err := db.QueryContext(ctx, histQuery, filter.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hists := make([]Row, 0)
	for rows.Next() {
		var row Row
		err = rows.Scan(&row.Type, &row.Jet, &row.Var1, &row.Var2, &row.Edges, &row.Bins)
		if err != nil {
			return nil, err
		}
		hists = append(hists, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hists, nil
}
