package store

import "go.mongodb.org/mongo-driver/bson"

// AggregationMatch helps generate aggregation object for $match
func AggregationMatch(matchCondition bson.M) bson.D {
	match := bson.D{}
	for k, v := range matchCondition {
		match = append(match, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$match", Value: match},
	}
}

// AggregationProject helps generate aggregation object for $project
func AggregationProject(projectCondition bson.M) bson.D {
	project := bson.D{}
	for k, v := range projectCondition {
		project = append(project, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$project", Value: project},
	}
}

// AggregationSort helps generate aggregation object for $sort
func AggregationSort(sortCondition bson.M) bson.D {
	sort := bson.D{}
	for k, v := range sortCondition {
		sort = append(sort, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$sort", Value: sort},
	}
}

// AggregationLimit helps generate aggregation object for $limit
func AggregationLimit(limit int64) bson.D {
	return bson.D{
		bson.E{Key: "$limit", Value: limit},
	}
}

// AggregationGroup helps generate aggregation object for $group
func AggregationGroup(id interface{}, groupConditions bson.D) bson.D {
	group := bson.D{bson.E{Key: "_id", Value: id}}
	group = append(group, groupConditions...)

	return bson.D{
		bson.E{
			Key: "$group", Value: group,
		},
	}
}
