package registry

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// Entity is the registry's representation of a stored record.
type Entity struct {
	ID       string          `json:"id"`
	Created  *time.Time      `json:"created,omitempty"`
	Modified *time.Time      `json:"modified,omitempty"`
	Path     string          `json:"path,omitempty"`
	Body     json.RawMessage `json:"body"`
}

// Document returns the stored document. The registry keeps JSON documents
// inline and everything else as a JSON string.
func (e *Entity) Document() []byte {
	var s string
	if err := json.Unmarshal(e.Body, &s); err == nil {
		return []byte(s)
	}
	return e.Body
}

// ETag returns the upper-case hex MD5 of the body.
func (e *Entity) ETag() string {
	sum := md5.Sum(e.Body)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// entityRequest is the request body for both creating and updating an entity.
type entityRequest struct {
	ID   string `json:"id"`
	Body any    `json:"body"`
}

// documentBody embeds JSON documents as-is and wraps anything else in a string.
func documentBody(doc []byte) any {
	if json.Valid(doc) {
		return json.RawMessage(doc)
	}
	return string(doc)
}
