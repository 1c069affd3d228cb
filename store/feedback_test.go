package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/feedback-api/schema"
)

type FeedbackTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewFeedbackTestSuite(connURI, dbName string) *FeedbackTestSuite {
	return &FeedbackTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *FeedbackTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
}

// SetupTest truncates the feedback collection and rebuilds its indexes so
// every test starts from an empty store.
func (s *FeedbackTestSuite) SetupTest() {
	if err := s.testDatabase.Collection(schema.FeedbackCollection).Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *FeedbackTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// newTestFeedback returns a valid stored-shape entry with the public
// defaults applied.
func newTestFeedback(email string, createdAt time.Time) schema.Feedback {
	return schema.Feedback{
		Name:      "Alice Chen",
		Email:     email,
		Message:   "the new dashboard is awesome",
		Rating:    5,
		Status:    schema.FeedbackStatusNew,
		Priority:  schema.FeedbackPriorityMedium,
		IsPublic:  true,
		Tags:      []string{"positive"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// loadFixtures inserts entries directly, bypassing CreateFeedback, so
// tests can control created_at.
func (s *FeedbackTestSuite) loadFixtures(entries ...schema.Feedback) {
	docs := make([]interface{}, 0, len(entries))
	for i := range entries {
		docs = append(docs, entries[i])
	}

	if _, err := s.testDatabase.Collection(schema.FeedbackCollection).InsertMany(context.Background(), docs); err != nil {
		s.T().Fatal(err)
	}
}

func (s *FeedbackTestSuite) TestCreateFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateFeedback(schema.Feedback{
		Name:     "Alice Chen",
		Email:    "alice@example.com",
		Message:  "a lots of feedback",
		Rating:   5,
		Status:   schema.FeedbackStatusNew,
		Priority: schema.FeedbackPriorityMedium,
		IsPublic: true,
		Tags:     []string{},
	})

	s.NoError(err)
	s.False(created.ID.IsZero())
	s.False(created.CreatedAt.IsZero())
	s.Equal(created.CreatedAt, created.UpdatedAt)

	count, err := s.testDatabase.Collection(schema.FeedbackCollection).CountDocuments(context.Background(), bson.M{"_id": created.ID})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *FeedbackTestSuite) TestHasRecentFeedbackFrom() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	now := time.Now().UTC()
	s.loadFixtures(
		newTestFeedback("fresh@example.com", now.Add(-10*time.Minute)),
		newTestFeedback("stale@example.com", now.Add(-2*time.Hour)),
	)

	since := now.Add(-60 * time.Minute)

	recent, err := store.HasRecentFeedbackFrom("fresh@example.com", since)
	s.NoError(err)
	s.True(recent)

	recent, err = store.HasRecentFeedbackFrom("stale@example.com", since)
	s.NoError(err)
	s.False(recent)

	recent, err = store.HasRecentFeedbackFrom("nobody@example.com", since)
	s.NoError(err)
	s.False(recent)
}

func (s *FeedbackTestSuite) TestListFeedbackPagination() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	now := time.Now().UTC()
	entries := make([]schema.Feedback, 0, 15)
	for i := 0; i < 15; i++ {
		entries = append(entries, newTestFeedback("page@example.com", now.Add(-time.Duration(i)*time.Minute)))
	}
	s.loadFixtures(entries...)

	page, err := store.ListFeedback(FeedbackFilter{PublicOnly: true}, 2, 10)
	s.NoError(err)
	s.Len(page.Items, 5)
	s.Equal(int64(15), page.Total)
	s.False(page.HasNext)
	s.True(page.HasPrev)

	page, err = store.ListFeedback(FeedbackFilter{PublicOnly: true}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 10)
	s.True(page.HasNext)
	s.False(page.HasPrev)
}

func (s *FeedbackTestSuite) TestListFeedbackOrder() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := newTestFeedback("older@example.com", now.Add(-time.Hour))
	older.Message = "submitted an hour earlier"
	newer := newTestFeedback("newer@example.com", now)
	newer.Message = "submitted just now here"
	s.loadFixtures(older, newer)

	page, err := store.ListFeedback(FeedbackFilter{PublicOnly: true}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 2)
	s.Equal("submitted just now here", page.Items[0].Message)
	s.Equal("submitted an hour earlier", page.Items[1].Message)
}

func (s *FeedbackTestSuite) TestListFeedbackPublicProjection() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	entry := newTestFeedback("secret@example.com", time.Now().UTC())
	entry.IPAddress = "203.0.113.7"
	entry.UserAgent = "curl/8.0"
	s.loadFixtures(entry)

	page, err := store.ListFeedback(FeedbackFilter{PublicOnly: true}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 1)

	item := page.Items[0]
	s.True(item.ID.IsZero())
	s.Empty(item.Email)
	s.Empty(item.IPAddress)
	s.Empty(item.UserAgent)
	s.Equal("Alice Chen", item.Name)
	s.NotEmpty(item.Message)
	s.Equal([]string{"positive"}, item.Tags)
}

func (s *FeedbackTestSuite) TestListFeedbackFullModeStripsMetadata() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	entry := newTestFeedback("admin-view@example.com", time.Now().UTC())
	entry.IPAddress = "203.0.113.7"
	entry.UserAgent = "curl/8.0"
	entry.IsPublic = false
	s.loadFixtures(entry)

	page, err := store.ListFeedback(FeedbackFilter{}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 1)

	item := page.Items[0]
	s.False(item.ID.IsZero())
	s.Equal("admin-view@example.com", item.Email)
	s.Empty(item.IPAddress)
	s.Empty(item.UserAgent)
}

func (s *FeedbackTestSuite) TestListFeedbackPublicOnlyHidesArchived() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	archived := newTestFeedback("archived@example.com", time.Now().UTC())
	archived.Status = schema.FeedbackStatusArchived
	private := newTestFeedback("private@example.com", time.Now().UTC())
	private.IsPublic = false
	visible := newTestFeedback("visible@example.com", time.Now().UTC())
	s.loadFixtures(archived, private, visible)

	page, err := store.ListFeedback(FeedbackFilter{PublicOnly: true}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 1)
	s.Equal(int64(1), page.Total)
}

func (s *FeedbackTestSuite) TestListFeedbackStatusFilter() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	read := newTestFeedback("read@example.com", time.Now().UTC())
	read.Status = schema.FeedbackStatusRead
	s.loadFixtures(read, newTestFeedback("new@example.com", time.Now().UTC()))

	page, err := store.ListFeedback(FeedbackFilter{Status: schema.FeedbackStatusRead}, 1, 10)
	s.NoError(err)
	s.Len(page.Items, 1)
	s.Equal(schema.FeedbackStatusRead, page.Items[0].Status)
}

func (s *FeedbackTestSuite) TestGetFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateFeedback(schema.Feedback{
		Name:      "Alice Chen",
		Email:     "get@example.com",
		Message:   "lovely little product",
		Rating:    5,
		Status:    schema.FeedbackStatusNew,
		Priority:  schema.FeedbackPriorityMedium,
		IsPublic:  true,
		Tags:      []string{},
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
	})
	s.NoError(err)

	found, err := store.GetFeedback(created.ID.Hex())
	s.NoError(err)
	s.Equal("get@example.com", found.Email)
	s.Empty(found.IPAddress)
	s.Empty(found.UserAgent)
}

func (s *FeedbackTestSuite) TestGetFeedbackHidesPrivateAndArchived() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	private := newTestFeedback("private@example.com", time.Now().UTC())
	private.IsPublic = false
	privateID := s.insertOne(private)

	archived := newTestFeedback("archived@example.com", time.Now().UTC())
	archived.Status = schema.FeedbackStatusArchived
	archivedID := s.insertOne(archived)

	_, err := store.GetFeedback(privateID)
	s.Equal(ErrFeedbackNotFound, err)

	_, err = store.GetFeedback(archivedID)
	s.Equal(ErrFeedbackNotFound, err)

	_, err = store.GetFeedback("ffffffffffffffffffffffff")
	s.Equal(ErrFeedbackNotFound, err)

	_, err = store.GetFeedback("not-an-object-id")
	s.Equal(ErrInvalidFeedbackID, err)
}

func (s *FeedbackTestSuite) insertOne(entry schema.Feedback) string {
	r, err := s.testDatabase.Collection(schema.FeedbackCollection).InsertOne(context.Background(), entry)
	if err != nil {
		s.T().Fatal(err)
	}
	return r.InsertedID.(primitive.ObjectID).Hex()
}

func (s *FeedbackTestSuite) TestRecentFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	now := time.Now().UTC()
	entries := make([]schema.Feedback, 0, 8)
	for i := 0; i < 7; i++ {
		entries = append(entries, newTestFeedback("recent@example.com", now.Add(-time.Duration(i)*time.Minute)))
	}
	hidden := newTestFeedback("hidden@example.com", now)
	hidden.IsPublic = false
	entries = append(entries, hidden)
	s.loadFixtures(entries...)

	items, err := store.RecentFeedback(5)
	s.NoError(err)
	s.Len(items, 5)

	for _, item := range items {
		s.True(item.ID.IsZero())
		s.Empty(item.Email)
		s.Empty(item.IPAddress)
		s.Empty(item.UserAgent)
	}
}

func (s *FeedbackTestSuite) TestDeleteFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateFeedback(newTestFeedback("delete@example.com", time.Time{}))
	s.NoError(err)

	s.NoError(store.DeleteFeedback(created.ID.Hex()))

	_, err = store.GetFeedback(created.ID.Hex())
	s.Equal(ErrFeedbackNotFound, err)

	s.Equal(ErrFeedbackNotFound, store.DeleteFeedback(created.ID.Hex()))
	s.Equal(ErrInvalidFeedbackID, store.DeleteFeedback("not-an-object-id"))
}

func TestFeedbackTestSuite(t *testing.T) {
	suite.Run(t, NewFeedbackTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-feedback-store"))
}
