package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hublead/marketplace-api/internal/core/domain"
	"github.com/hublead/marketplace-api/internal/core/ports"
)

const requestsCollection = "requests"

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type mongoRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	OwnerID     string             `bson:"owner_id"`
	Status      string             `bson:"status"`
	DisclosedTo []string           `bson:"disclosed_to"`
	Contact     domain.Contact     `bson:"contact"`
	CreatedAt   time.Time          `bson:"created_at"`
	ApprovedAt  time.Time          `bson:"approved_at,omitempty"`
}

func (m *mongoRequest) toDomain() *domain.Request {
	disclosed := m.DisclosedTo
	if disclosed == nil {
		disclosed = []string{}
	}
	return &domain.Request{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		Status:      domain.RequestStatus(m.Status),
		DisclosedTo: disclosed,
		Contact:     m.Contact,
		CreatedAt:   m.CreatedAt,
		ApprovedAt:  m.ApprovedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRequest{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Status:      string(req.Status),
		DisclosedTo: []string{},
		Contact:     req.Contact,
		CreatedAt:   req.CreatedAt.UTC(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	created.DisclosedTo = []string{}
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var mr mongoRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.Request, error) {
	return r.list(ctx, bson.M{"status": string(status)})
}

func (r *RequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Request, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Request
	for cursor.Next(ctx) {
		var mr mongoRequest
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, mr.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return out, nil
}

// AddDisclosureRecipient appends supplierID to disclosed_to via $addToSet.
// The server applies the set-union atomically, so among concurrent calls for
// one pair exactly one modifies the document; that caller gets firstTime.
func (r *RequestRepository) AddDisclosureRecipient(ctx context.Context, requestID, supplierID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, domain.ErrRequestNotFound
	}

	update := bson.M{"$addToSet": bson.M{"disclosed_to": supplierID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return false, fmt.Errorf("add disclosure recipient: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, domain.ErrRequestNotFound
	}
	return result.ModifiedCount == 1, nil
}

// RemoveDisclosureRecipient pulls supplierID back out of disclosed_to. Only
// used to compensate a claim whose paired debit was rejected.
func (r *RequestRepository) RemoveDisclosureRecipient(ctx context.Context, requestID, supplierID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	update := bson.M{"$pull": bson.M{"disclosed_to": supplierID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("remove disclosure recipient: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) SetStatus(ctx context.Context, requestID string, status domain.RequestStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	fields := bson.M{"status": string(status)}
	if status == domain.StatusApproved {
		fields["approved_at"] = at.UTC()
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, requestID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

type statsFacets struct {
	ByStatus []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	} `bson:"by_status"`
	Disclosures []struct {
		Total int64 `bson:"total"`
	} `bson:"disclosures"`
	PerMonth []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	} `bson:"per_month"`
}

// Stats aggregates the dashboard counters in a single $facet pipeline.
func (r *RequestRepository) Stats(ctx context.Context) (*ports.StatusCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"by_status": bson.A{
				bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
			},
			"disclosures": bson.A{
				bson.M{"$group": bson.M{
					"_id": nil,
					"total": bson.M{"$sum": bson.M{
						"$size": bson.M{"$ifNull": bson.A{"$disclosed_to", bson.A{}}},
					}},
				}},
			},
			"per_month": bson.A{
				bson.M{"$group": bson.M{
					"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"}},
					"count": bson.M{"$sum": 1},
				}},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	defer cursor.Close(ctx)

	var facets []statsFacets
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	counts := &ports.StatusCounts{CreatedPerMonth: make(map[string]int64)}
	if len(facets) == 0 {
		return counts, nil
	}

	for _, group := range facets[0].ByStatus {
		switch domain.RequestStatus(group.ID) {
		case domain.StatusPending:
			counts.Pending = group.Count
		case domain.StatusApproved:
			counts.Approved = group.Count
		}
	}
	if len(facets[0].Disclosures) > 0 {
		counts.TotalDisclosures = facets[0].Disclosures[0].Total
	}
	for _, group := range facets[0].PerMonth {
		counts.CreatedPerMonth[group.ID] = group.Count
	}
	return counts, nil
}

// EnsureIndexes creates necessary indexes on the requests collection.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
