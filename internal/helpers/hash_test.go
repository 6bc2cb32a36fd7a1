package helpers_test

import (
	"testing"

	"github.com/julien-sobczak/the-notekit/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	// Hashes must be deterministic
	assert.Equal(t, helpers.Hash([]byte("hello")), helpers.Hash([]byte("hello")))
	assert.NotEqual(t, helpers.Hash([]byte("hello")), helpers.Hash([]byte("Hello")))
}

func TestSelectionFingerprint(t *testing.T) {
	content := "```CommandType Tasks\n![[Projects-Tasks.base]]\n```"

	same := helpers.SelectionFingerprint(content, "tasks", "")
	assert.Equal(t, same, helpers.SelectionFingerprint(content, "tasks", ""))

	// A different selection over identical content must change the fingerprint
	assert.NotEqual(t, same, helpers.SelectionFingerprint(content, "notes", ""))
	assert.NotEqual(t, same, helpers.SelectionFingerprint(content, "tasks", "subnote1"))

	// A different content under an identical selection too
	assert.NotEqual(t, same, helpers.SelectionFingerprint(content+"\n", "tasks", ""))
}

func TestCommandsFingerprint(t *testing.T) {
	contentHash := helpers.Hash([]byte("content"))
	triples := [][3]string{
		{"switch-to-main-1", "tasks", ""},
		{"switch-to-main-2", "notes", ""},
	}

	same := helpers.CommandsFingerprint(contentHash, triples)
	assert.Equal(t, same, helpers.CommandsFingerprint(contentHash, triples))

	// Reordering or editing the command list must change the fingerprint
	reordered := [][3]string{triples[1], triples[0]}
	assert.NotEqual(t, same, helpers.CommandsFingerprint(contentHash, reordered))

	extended := append(append([][3]string{}, triples...), [3]string{"switch-to-nested-1", "notes", "subnote1"})
	assert.NotEqual(t, same, helpers.CommandsFingerprint(contentHash, extended))
}
