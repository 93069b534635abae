// Package schema defines the single-table layout shared by the storage stack
// and every compute unit. Multiple entity types live in one table and are
// disambiguated purely by key convention plus an entity-type discriminator;
// nothing else enforces uniqueness or routes queries.
package schema

import (
	"fmt"
	"time"
)

// Physical attribute names. The storage stack declares the table with these
// so the deployed schema and this contract cannot drift.
const (
	AttrPartitionKey = "PK"
	AttrSortKey      = "SK"
	AttrGSI1PK       = "GSI1PK"
	AttrGSI1SK       = "GSI1SK"
	AttrEntityType   = "EntityType"
)

// IndexByCategory is the secondary access pattern: items grouped by category,
// ordered by creation time.
const IndexByCategory = "GSI1"

// Entity-type discriminators. Every item carries exactly one.
const (
	EntityProfile   = "PROFILE"
	EntityPhrase    = "PHRASE"
	EntityAudioClip = "AUDIO"
)

// UserPartition keys all of one user's items into a single partition.
func UserPartition(userID string) string {
	return "USER#" + userID
}

// ProfileSort is the sort key of the singleton profile item per user.
func ProfileSort() string {
	return EntityProfile
}

// PhraseSort keys a generated phrase under its owner, grouped by item type
// so a begins_with query returns all phrases.
func PhraseSort(phraseID string) string {
	return EntityPhrase + "#" + phraseID
}

// AudioClipSort keys an audio clip record under its owner by synthesis time.
func AudioClipSort(createdAt time.Time) string {
	return EntityAudioClip + "#" + CreatedSort(createdAt)
}

// CategoryPartition is the GSI1 partition for the by-category access pattern.
func CategoryPartition(category string) string {
	return "CATEGORY#" + category
}

// CreatedSort renders a creation time as a lexicographically sortable GSI1
// sort key.
func CreatedSort(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// AudioObjectKey is the object-store key for a synthesized audio file,
// keyed by owner and synthesis timestamp.
func AudioObjectKey(userID string, t time.Time) string {
	return fmt.Sprintf("audio/%s/%d.mp3", userID, t.UTC().Unix())
}
