package invoiceRepo

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFindQueryEmptyFilter(t *testing.T) {
	assert.Empty(t, buildFindQuery(Filter{}))
}

func TestBuildFindQueryCustomerNameIsQuoted(t *testing.T) {
	query := buildFindQuery(Filter{CustomerName: "A & B (Ltd)"})

	field, ok := query["customerName"].(bson.M)
	require.True(t, ok)
	re, ok := field["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", re.Options)

	// The pattern must compile and match the literal name, parentheses
	// included, not treat them as a capture group.
	compiled, err := regexp.Compile("(?i)" + re.Pattern)
	require.NoError(t, err)
	assert.True(t, compiled.MatchString("a & b (ltd) logistics"))
	assert.False(t, compiled.MatchString("A & B Ltd"))
}

func TestBuildFindQueryDateRangeNeedsBothBounds(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query := buildFindQuery(Filter{StartDate: start})
	assert.NotContains(t, query, "saleDate")

	end := start.AddDate(0, 1, 0)
	query = buildFindQuery(Filter{Status: "pending", StartDate: start, EndDate: end})
	assert.Equal(t, "pending", query["status"])
	assert.Equal(t, bson.M{"$gte": start, "$lte": end}, query["saleDate"])
}
