package store

import (
	"context"

	"campushub/db"
	"campushub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists entities in MongoDB. Events are keyed by slug;
// scoped entities live in their own collections with a slug field, which
// plays the role of the per-event subcollection path.
type MongoStore struct{}

func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

// SaveEvent upserts by slug with $set, so only supplied fields change.
func (s *MongoStore) SaveEvent(ctx context.Context, e models.Event) error {
	opts := options.Update().SetUpsert(true)
	_, err := db.EventsCollection.UpdateOne(ctx, bson.M{"slug": e.Slug}, bson.M{"$set": e}, opts)
	return err
}

func (s *MongoStore) GetEventBySlug(ctx context.Context, slug string) (models.Event, bool, error) {
	var e models.Event
	err := db.EventsCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return models.Event{}, false, nil
	}
	if err != nil {
		return models.Event{}, false, err
	}
	return e, true, nil
}

func (s *MongoStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	cursor, err := db.EventsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *MongoStore) ListUserEvents(ctx context.Context, creatorID string) ([]models.Event, error) {
	var events []models.Event
	cursor, err := db.EventsCollection.Find(ctx, bson.M{"creatorId": creatorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *MongoStore) AddRegistration(ctx context.Context, slug string, reg models.Registration) error {
	reg.Slug = slug
	_, err := db.RegistrationsCollection.InsertOne(ctx, reg)
	return err
}

func listSubmissions(ctx context.Context, coll *mongo.Collection, slug string) ([]models.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"slug": slug}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var subs []models.Registration
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Registration{}
	}
	for i := range subs {
		subs[i].Normalize()
	}
	return subs, nil
}

func (s *MongoStore) ListRegistrations(ctx context.Context, slug string) ([]models.Registration, error) {
	return listSubmissions(ctx, db.RegistrationsCollection, slug)
}

func (s *MongoStore) AddVolunteer(ctx context.Context, slug string, vol models.Volunteer) error {
	vol.Slug = slug
	_, err := db.VolunteersCollection.InsertOne(ctx, vol)
	return err
}

func (s *MongoStore) ListVolunteers(ctx context.Context, slug string) ([]models.Volunteer, error) {
	return listSubmissions(ctx, db.VolunteersCollection, slug)
}

func (s *MongoStore) AddSuggestion(ctx context.Context, slug string, sug models.Suggestion) error {
	sug.Slug = slug
	_, err := db.SuggestionsCollection.InsertOne(ctx, sug)
	return err
}

func (s *MongoStore) ListSuggestions(ctx context.Context, slug string) ([]models.Suggestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.SuggestionsCollection.Find(ctx, bson.M{"slug": slug}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var suggestions []models.Suggestion
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	return suggestions, nil
}

// AddOrganizer upserts on (slug, email), which is what makes the
// organizer list a set.
func (s *MongoStore) AddOrganizer(ctx context.Context, slug, email, name string) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": models.Organizer{Slug: slug, Email: email, Name: name, AddedAt: nowMillis()}}
	_, err := db.OrganizersCollection.UpdateOne(ctx, bson.M{"slug": slug, "email": email}, update, opts)
	return err
}

func (s *MongoStore) ListOrganizers(ctx context.Context, slug string) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: 1}})
	cursor, err := db.OrganizersCollection.Find(ctx, bson.M{"slug": slug}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var organizers []models.Organizer
	if err := cursor.All(ctx, &organizers); err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(organizers))
	for _, o := range organizers {
		emails = append(emails, o.Email)
	}
	return emails, nil
}

func (s *MongoStore) AddMessage(ctx context.Context, m models.InboxMessage) error {
	_, err := db.MessagesCollection.InsertOne(ctx, m)
	return err
}

func (s *MongoStore) ListMessages(ctx context.Context) ([]models.InboxMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.MessagesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var messages []models.InboxMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.InboxMessage{}
	}
	return messages, nil
}

func (s *MongoStore) AddProposal(ctx context.Context, p models.Proposal) error {
	_, err := db.ProposalsCollection.InsertOne(ctx, p)
	return err
}

func (s *MongoStore) ListProposals(ctx context.Context) ([]models.Proposal, error) {
	cursor, err := db.ProposalsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var proposals []models.Proposal
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	return proposals, nil
}
