package settingstore

import (
	"database/sql"
	"fmt"
)

type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

// OpenDB opens the local sqlite file, or a remote libsql database when
// a url is configured.
func (config Config) OpenDB() (*sql.DB, error) {
	if config.Url == "" {
		file := config.File
		if file == "" {
			file = "vexscout.db"
		}
		return sql.Open("sqlite", file)
	}
	if config.AuthToken != "" {
		return sql.Open("libsql", fmt.Sprintf("%s?authToken=%s", config.Url, config.AuthToken))
	}
	return sql.Open("libsql", config.Url)
}
