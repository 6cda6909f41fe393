package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// EqualMatchBson creates BSON for equal search (Case-sensitive)
func EqualMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: value}}
}

// InMatchBson creates BSON matching documents whose key is one of values
func InMatchBson[V any](key string, values []V) bson.D {
	return bson.D{{Key: key, Value: bson.D{{Key: "$in", Value: values}}}}
}

// AllMatchBson matches every document in the collection
func AllMatchBson() bson.D {
	return bson.D{}
}
