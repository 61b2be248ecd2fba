// Package cookie holds the cookie record shared by all browser readers,
// the host-key expansion used to query cookie stores, and the output
// formats offered to callers.
package cookie

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Cookie is a single cookie row as the browser stored it. Value is always
// plaintext; encrypted values are decrypted before a Cookie is built.
// Expires keeps the store's native units (microseconds since 1601 for the
// Chrome family, epoch seconds for Firefox).
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Host     string `json:"host"`
	Path     string `json:"path"`
	Expires  int64  `json:"expires"`
	IsSecure bool   `json:"isSecure"`
}

// NameValueMap flattens cookies into a name to value map. When the same
// name appears under several host keys, the cookie iterated last wins;
// readers yield host keys from least to most specific, so the most
// specific one ends up in the map.
func NameValueMap(cookies []Cookie) map[string]string {
	m := make(map[string]string, len(cookies))
	for _, c := range cookies {
		m[c.Name] = c.Value
	}
	return m
}

const netscapeHeader = "# Netscape HTTP Cookie File"

// WriteNetscapeFile writes cookies in the Netscape cookie-file format
// accepted by curl and friends: a header comment, then one tab-separated
// line per cookie. http://www.cookiecentral.com/faq/#3.5
func WriteNetscapeFile(w io.Writer, cookies []Cookie) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, netscapeHeader)
	for _, c := range cookies {
		secure := "FALSE"
		if c.IsSecure {
			secure = "TRUE"
		}
		fmt.Fprintf(bw, "%s\tTRUE\t%s\t%s\t%d\t%s\t%s\n",
			c.Host, c.Path, secure, c.Expires, c.Name, c.Value)
	}
	return bw.Flush()
}

// SaveNetscapeFile writes cookies to path in the Netscape cookie-file format.
func SaveNetscapeFile(path string, cookies []Cookie) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteNetscapeFile(f, cookies); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
