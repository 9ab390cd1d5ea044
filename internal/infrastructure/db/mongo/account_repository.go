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
)

const accountsCollection = "accounts"

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountsCollection)}
}

type mongoAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Role          string             `bson:"role"`
	Entitlement   string             `bson:"entitlement,omitempty"`
	CreditBalance int                `bson:"credit_balance"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (m *mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:            m.ID.Hex(),
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Role:          m.Role,
		Entitlement:   domain.Entitlement(m.Entitlement),
		CreditBalance: m.CreditBalance,
		CreatedAt:     unixToTime(m.CreatedAt),
		UpdatedAt:     unixToTime(m.UpdatedAt),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Email:         account.Email,
		PasswordHash:  account.PasswordHash,
		Role:          account.Role,
		Entitlement:   string(account.Entitlement),
		CreditBalance: account.CreditBalance,
		CreatedAt:     account.CreatedAt.Unix(),
		UpdatedAt:     account.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByEmail(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

// DebitCredit decrements the balance by one with the guard evaluated
// server-side: the update matches only while credit_balance > 0, so two
// concurrent debits can never drive the balance negative.
func (r *AccountRepository) DebitCredit(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	filter := bson.M{"_id": oid, "credit_balance": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"credit_balance": -1},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("debit credit: %w", err)
	}
	if result.MatchedCount == 0 {
		// Either the account is gone or the guard rejected the decrement.
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("debit credit: %w", err)
		}
		if n == 0 {
			return domain.ErrAccountNotFound
		}
		return domain.ErrInsufficientCredit
	}
	return nil
}

// CreditBalance atomically adds delta to the balance.
func (r *AccountRepository) CreditBalance(ctx context.Context, id string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	update := bson.M{
		"$inc": bson.M{"credit_balance": delta},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates necessary indexes on the accounts collection.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
