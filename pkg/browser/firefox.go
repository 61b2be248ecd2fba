package browser

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/ini.v1"

	"cookiemonger/pkg/cookie"
)

const firefoxCookieQuery = "SELECT host, name, value, path, isSecure, expiry FROM moz_cookies WHERE host = ?"

// FirefoxCookies reads the cookies Firefox stored for rawURL's host.
// Firefox keeps an exclusive lock on its live cookie database, so the
// database and its write-ahead log are copied to a temporary directory
// and the WAL is merged into the copy before querying. Firefox cookie
// values are stored in plaintext; no key material is needed.
func FirefoxCookies(rawURL string, opts *Options) ([]cookie.Cookie, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.log()

	host, err := hostname(rawURL)
	if err != nil {
		return nil, err
	}

	srcDB := opts.CookieFile
	if srcDB == "" {
		profilesDir, err := firefoxProfilesDir(runtime.GOOS)
		if err != nil {
			return nil, err
		}
		profileName := opts.Profile
		if profileName == "" {
			profileName, err = defaultFirefoxProfile(profilesDir)
			if err != nil {
				return nil, err
			}
		}
		srcDB, err = findProfileCookieDB(profilesDir, profileName)
		if err != nil {
			return nil, err
		}
	}

	tmpDir, err := os.MkdirTemp("", "cookiemonger-firefox-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	dbFile, err := snapshotCookieDB(srcDB, tmpDir)
	if err != nil {
		return nil, err
	}
	log.Info("reading firefox cookies for %s from a snapshot of %s", host, srcDB)

	db, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, dbFile, err)
	}
	defer db.Close()

	// Merge outstanding WAL frames into the snapshot.
	if _, err := db.Exec("PRAGMA journal_mode=OFF"); err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, dbFile, err)
	}

	var cookies []cookie.Cookie
	for _, hostKey := range cookie.HostKeys(host) {
		rows, err := db.Query(firefoxCookieQuery, hostKey)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, dbFile, err)
		}
		for rows.Next() {
			var c cookie.Cookie
			var secure int64
			if err := rows.Scan(&c.Host, &c.Name, &c.Value, &c.Path, &secure, &c.Expires); err != nil {
				rows.Close()
				return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, dbFile, err)
			}
			c.IsSecure = secure != 0
			cookies = append(cookies, c)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, dbFile, err)
		}
		rows.Close()
	}

	log.Info("matched %d cookies for %s", len(cookies), host)
	return cookies, nil
}

func firefoxProfilesDir(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch goos {
	case "linux":
		return filepath.Join(home, ".mozilla", "firefox"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"), nil
	}
	return "", fmt.Errorf("%w: no firefox profile location known for %s", ErrUnsupportedPlatform, goos)
}

// defaultFirefoxProfile reads profiles.ini to find the configured default
// profile. Firefox 67 moved the default into Install sections; older
// versions mark a Profile section with Default=1. With neither present
// the first listed profile is used.
func defaultFirefoxProfile(profilesDir string) (string, error) {
	iniPath := filepath.Join(profilesDir, "profiles.ini")
	cfg, err := ini.Load(iniPath)
	if err != nil {
		return "", fmt.Errorf("read profiles.ini at %s: %w", iniPath, err)
	}

	for _, sec := range cfg.Sections() {
		if strings.HasPrefix(sec.Name(), "Install") {
			if def := sec.Key("Default").String(); def != "" {
				return def, nil
			}
		}
	}

	first := ""
	for _, sec := range cfg.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}
		path := sec.Key("Path").String()
		if first == "" {
			first = path
		}
		if sec.Key("Default").String() == "1" {
			return path, nil
		}
	}
	if first != "" {
		return first, nil
	}
	return "", fmt.Errorf("no profiles found in %s", profilesDir)
}

// findProfileCookieDB resolves name (a profile path or glob pattern) to
// the profile's cookies.sqlite.
func findProfileCookieDB(profilesDir, name string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(profilesDir, name))
	if err != nil {
		return "", err
	}
	for _, dir := range matches {
		dbFile := filepath.Join(dir, "cookies.sqlite")
		if _, err := os.Stat(dbFile); err == nil {
			return dbFile, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrProfileNotPopulated, filepath.Join(profilesDir, name))
}

// snapshotCookieDB copies the cookie database and, when present, its
// write-ahead log into dir and returns the copied database path.
func snapshotCookieDB(srcDB, dir string) (string, error) {
	dst := filepath.Join(dir, filepath.Base(srcDB))
	if err := copyFile(srcDB, dst); err != nil {
		return "", fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, srcDB, err)
	}
	wal := srcDB + "-wal"
	if _, err := os.Stat(wal); err == nil {
		if err := copyFile(wal, dst+"-wal"); err != nil {
			return "", fmt.Errorf("%w at %s: %v", ErrDatabaseAccess, wal, err)
		}
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
