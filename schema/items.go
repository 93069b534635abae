package schema

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileItem is the singleton per-user profile record. The provider is set
// once at creation; difficulty and language follow the user's Cognito custom
// attributes, which a post-authentication hook keeps in sync.
type ProfileItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	UserID     string `dynamodbav:"UserID"`
	Provider   string `dynamodbav:"Provider"`
	Difficulty string `dynamodbav:"Difficulty"`
	Language   string `dynamodbav:"Language"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// PhraseItem is one generated or translated phrase. It projects into GSI1 so
// phrases can also be queried by category in creation order.
type PhraseItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`
	PhraseID   string `dynamodbav:"PhraseID"`
	UserID     string `dynamodbav:"UserID"`
	Category   string `dynamodbav:"Category"`
	Text       string `dynamodbav:"Text"`
	Language   string `dynamodbav:"Language"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// AudioClipItem records a synthesized audio file; the payload itself lives in
// the audio bucket under ObjectKey.
type AudioClipItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	UserID     string `dynamodbav:"UserID"`
	PhraseID   string `dynamodbav:"PhraseID"`
	ObjectKey  string `dynamodbav:"ObjectKey"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// NewProfileItem builds a keyed profile record.
func NewProfileItem(userID, provider, difficulty, language string, createdAt time.Time) ProfileItem {
	return ProfileItem{
		PK:         UserPartition(userID),
		SK:         ProfileSort(),
		EntityType: EntityProfile,
		UserID:     userID,
		Provider:   provider,
		Difficulty: difficulty,
		Language:   language,
		CreatedAt:  CreatedSort(createdAt),
	}
}

// NewPhraseItem builds a keyed phrase record including its GSI1 projection.
func NewPhraseItem(userID, phraseID, category, text, language string, createdAt time.Time) PhraseItem {
	return PhraseItem{
		PK:         UserPartition(userID),
		SK:         PhraseSort(phraseID),
		GSI1PK:     CategoryPartition(category),
		GSI1SK:     CreatedSort(createdAt),
		EntityType: EntityPhrase,
		PhraseID:   phraseID,
		UserID:     userID,
		Category:   category,
		Text:       text,
		Language:   language,
		CreatedAt:  CreatedSort(createdAt),
	}
}

// NewAudioClipItem builds a keyed audio clip record for a synthesis result.
func NewAudioClipItem(userID, phraseID string, createdAt time.Time) AudioClipItem {
	return AudioClipItem{
		PK:         UserPartition(userID),
		SK:         AudioClipSort(createdAt),
		EntityType: EntityAudioClip,
		UserID:     userID,
		PhraseID:   phraseID,
		ObjectKey:  AudioObjectKey(userID, createdAt),
		CreatedAt:  CreatedSort(createdAt),
	}
}

// MarshalItem converts any schema item into its DynamoDB attribute map.
func MarshalItem(item interface{}) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(item)
}

// UnmarshalItem decodes a DynamoDB attribute map into the given schema item.
func UnmarshalItem(av map[string]types.AttributeValue, out interface{}) error {
	return attributevalue.UnmarshalMap(av, out)
}
