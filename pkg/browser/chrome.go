package browser

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"runtime"

	_ "github.com/mattn/go-sqlite3"

	"cookiemonger/pkg/cookie"
	"cookiemonger/pkg/crypto"
)

// hostname extracts the host part of rawURL. A scheme is required so that
// a bare "example.com" is not silently parsed as a relative path.
func hostname(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingScheme, rawURL)
	}
	return u.Host, nil
}

// chromeRow is one row of the Chromium cookies table, normalized across
// schema versions.
type chromeRow struct {
	hostKey        string
	name           string
	value          string
	encryptedValue []byte
	path           string
	secure         int64
	expires        int64
}

// mapRow applies the stored-vs-encrypted policy: a non-empty stored value
// is used verbatim whatever encrypted_value holds; an empty one with a
// recognized version prefix is decrypted; anything else yields an empty
// value. The branch order matters so that an unencrypted empty-string
// cookie is not mistaken for one needing decryption.
func mapRow(row chromeRow, key []byte) (cookie.Cookie, error) {
	value := row.value
	if value == "" && crypto.HasVersionPrefix(row.encryptedValue) {
		var err error
		value, err = crypto.DecryptValue(row.encryptedValue, key)
		if err != nil {
			return cookie.Cookie{}, fmt.Errorf("cookie %q for %q: %w", row.name, row.hostKey, err)
		}
	}
	return cookie.Cookie{
		Name:     row.name,
		Value:    value,
		Host:     row.hostKey,
		Path:     row.path,
		Expires:  row.expires,
		IsSecure: row.secure != 0,
	}, nil
}

// secureColumnName probes whether the schema calls its secure flag
// `secure` (old Chromium) or `is_secure`.
func secureColumnName(db *sql.DB) (string, error) {
	rows, err := db.Query("PRAGMA table_info(cookies)")
	if err != nil {
		return "", err
	}
	defer rows.Close()

	name := "is_secure"
	for rows.Next() {
		var (
			cid, notnull, pk int
			col, ctype       string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &col, &ctype, &notnull, &dflt, &pk); err != nil {
			return "", err
		}
		if col == "secure" {
			name = "secure"
			break
		}
	}
	return name, rows.Err()
}

// ChromeCookies reads the cookies a Chrome-family browser stored for
// rawURL's host, decrypting encrypted values with a key derived from the
// OS safe-storage secret. The database is opened read-only; a running
// browser may still hold the file.
func ChromeCookies(rawURL string, b Browser, opts *Options) ([]cookie.Cookie, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.log()

	host, err := hostname(rawURL)
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	config, err := resolveChromeConfig(b, runtime.GOOS, home)
	if err != nil {
		return nil, err
	}

	cookieFile := config.cookieFile
	if opts.CookieFile != "" {
		cookieFile = opts.CookieFile
	}

	secret := opts.Password
	if secret == nil {
		secret, err = chromeSecret(b, runtime.GOOS)
		if err != nil {
			return nil, err
		}
	}
	key := crypto.DeriveKey(secret, config.iterations)

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", cookieFile))
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, cookieFile, err)
	}
	defer db.Close()

	secureCol, err := secureColumnName(db)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, cookieFile, err)
	}

	log.Info("reading %s cookies for %s from %s", b, host, cookieFile)
	query := fmt.Sprintf("SELECT host_key, name, value, encrypted_value, path, %s, expires_utc FROM cookies WHERE host_key LIKE ?", secureCol)

	var cookies []cookie.Cookie
	for _, hostKey := range cookie.HostKeys(host) {
		rows, err := db.Query(query, hostKey)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, cookieFile, err)
		}
		for rows.Next() {
			var row chromeRow
			if err := rows.Scan(&row.hostKey, &row.name, &row.value, &row.encryptedValue,
				&row.path, &row.secure, &row.expires); err != nil {
				rows.Close()
				return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, cookieFile, err)
			}
			c, err := mapRow(row, key)
			if err != nil {
				rows.Close()
				return nil, err
			}
			cookies = append(cookies, c)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, cookieFile, err)
		}
		rows.Close()
	}

	log.Info("matched %d cookies for %s", len(cookies), host)
	return cookies, nil
}
