package helpers

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Hash is an utility to determine a MD5 hash (acceptable as not used for security reasons).
func Hash(bytes []byte) string {
	h := md5.New()
	h.Write(bytes)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// SelectionFingerprint digests a content string combined with the current
// view selection. Two calls return the same value only when both the content
// and the selected ids are identical, which makes the fingerprint usable to
// skip redundant re-renders.
func SelectionFingerprint(content string, selectedViewID, selectedSubViewID string) string {
	return Hash([]byte(content + "|selectedView:" + selectedViewID + "|selectedSubView:" + selectedSubViewID))
}

// CommandsFingerprint digests the identity of a command list (id/viewId/subViewId
// triples) combined with a content hash. Hosts compare successive values to
// decide whether re-registering commands is worth thrashing hotkey bindings.
func CommandsFingerprint(contentHash string, triples [][3]string) string {
	var sb strings.Builder
	sb.WriteString(contentHash)
	for _, triple := range triples {
		sb.WriteString("|")
		sb.WriteString(triple[0])
		sb.WriteString(":")
		sb.WriteString(triple[1])
		sb.WriteString(":")
		sb.WriteString(triple[2])
	}
	return Hash([]byte(sb.String()))
}
