// Package sourcehash computes a short content digest of a source file for
// log correlation, grounded on the teacher's use of
// golang.org/x/crypto/blake2b to derive deterministic identifiers from
// content in core/planfmt/idfactory.go and runtime/scrubber/scrubber.go.
// It carries no language semantics; it exists purely so --debug output can
// attach a `source=<hex>` field that stays stable across repeated runs of
// the same file and changes when the file does.
package sourcehash

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex-encoded BLAKE2b-256 digest of source.
func Digest(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
