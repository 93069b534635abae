package schema

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestPhraseItemKeys(t *testing.T) {
	item := NewPhraseItem("u-123", "p-9", "greetings", "bonjour", "fr", testTime)

	assert.Equal(t, "USER#u-123", item.PK)
	assert.Equal(t, "PHRASE#p-9", item.SK)
	assert.Equal(t, "CATEGORY#greetings", item.GSI1PK)
	assert.Equal(t, "2025-03-14T09:26:53Z", item.GSI1SK)
	assert.Equal(t, EntityPhrase, item.EntityType)
}

func TestProfileItemIsSingletonPerUser(t *testing.T) {
	a := NewProfileItem("u-123", "google", "beginner", "fr", testTime)
	b := NewProfileItem("u-123", "google", "advanced", "de", testTime.Add(time.Hour))

	// Same key regardless of mutable attributes; the table enforces
	// uniqueness only through this convention.
	assert.Equal(t, a.PK, b.PK)
	assert.Equal(t, a.SK, b.SK)
}

func TestAudioClipObjectKey(t *testing.T) {
	item := NewAudioClipItem("u-123", "p-9", testTime)

	assert.Equal(t, "audio/u-123/1741944413.mp3", item.ObjectKey)
	assert.Equal(t, "AUDIO#2025-03-14T09:26:53Z", item.SK)
}

func TestMarshalRoundTrip(t *testing.T) {
	item := NewPhraseItem("u-123", "p-9", "greetings", "bonjour", "fr", testTime)

	av, err := MarshalItem(item)
	require.NoError(t, err)

	pk, ok := av[AttrPartitionKey].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "USER#u-123", pk.Value)

	et, ok := av[AttrEntityType].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, EntityPhrase, et.Value)

	var got PhraseItem
	require.NoError(t, UnmarshalItem(av, &got))
	assert.Equal(t, item, got)
}

func TestQueryByOwner(t *testing.T) {
	expr, err := QueryByOwner("u-123", EntityPhrase)
	require.NoError(t, err)
	require.NotNil(t, expr.KeyCondition())

	values := expr.Values()
	var found bool
	for _, v := range values {
		if s, ok := v.(*types.AttributeValueMemberS); ok && s.Value == "USER#u-123" {
			found = true
		}
	}
	assert.True(t, found, "key condition should bind the owner partition")
}

func TestQueryByOwnerMatchesProfileSingleton(t *testing.T) {
	expr, err := QueryByOwner("u-123", EntityProfile)
	require.NoError(t, err)
	require.NotNil(t, expr.KeyCondition())

	// The profile sort key is the bare discriminator, so the condition must
	// bind it exactly; a PROFILE# prefix would never match the stored item.
	item := NewProfileItem("u-123", "google", "beginner", "fr", testTime)
	var boundSK, boundPrefix bool
	for _, v := range expr.Values() {
		s, ok := v.(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		switch s.Value {
		case item.SK:
			boundSK = true
		case EntityProfile + "#":
			boundPrefix = true
		}
	}
	assert.True(t, boundSK, "key condition should bind the profile sort key exactly")
	assert.False(t, boundPrefix, "profile lookup must not use the collection prefix")
}

func TestQueryByCategorySince(t *testing.T) {
	expr, err := QueryByCategorySince("greetings", testTime)
	require.NoError(t, err)
	require.NotNil(t, expr.KeyCondition())

	values := expr.Values()
	var foundCategory, foundSince bool
	for _, v := range values {
		s, ok := v.(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		switch s.Value {
		case "CATEGORY#greetings":
			foundCategory = true
		case "2025-03-14T09:26:53Z":
			foundSince = true
		}
	}
	assert.True(t, foundCategory)
	assert.True(t, foundSince)
}
