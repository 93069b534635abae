package schema

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// QueryByOwner builds the primary access pattern: all of one user's items of
// a given entity type, e.g. QueryByOwner(id, EntityPhrase). The profile is a
// singleton under a bare sort key, so it is matched exactly rather than by
// the collection prefix.
func QueryByOwner(userID, entityType string) (expression.Expression, error) {
	owner := expression.Key(AttrPartitionKey).Equal(expression.Value(UserPartition(userID)))

	var cond expression.KeyConditionBuilder
	if entityType == EntityProfile {
		cond = owner.And(expression.Key(AttrSortKey).Equal(expression.Value(ProfileSort())))
	} else {
		cond = owner.And(expression.Key(AttrSortKey).BeginsWith(entityType + "#"))
	}
	return expression.NewBuilder().WithKeyCondition(cond).Build()
}

// QueryByCategorySince builds the secondary access pattern over GSI1: items
// in a category created at or after the given time, in creation order.
func QueryByCategorySince(category string, since time.Time) (expression.Expression, error) {
	cond := expression.Key(AttrGSI1PK).Equal(expression.Value(CategoryPartition(category))).
		And(expression.Key(AttrGSI1SK).GreaterThanEqual(expression.Value(CreatedSort(since))))
	return expression.NewBuilder().WithKeyCondition(cond).Build()
}
