package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorchamber/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds both
// the payments and bookings collections so a settle can run in a single
// session transaction.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a payment repository over the given database.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
}

// Settle appends the payment record and sets paid/transactionId on the
// referenced booking. Both writes run inside one transaction; on topologies
// without transaction support (standalone mongod) the writes run
// sequentially instead.
func (r *MongoPaymentRepo) Settle(ctx context.Context, payment *models.Payment) (string, error) {
	payment.CreatedAt = time.Now()

	bookingOID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return "", fmt.Errorf("invalid booking id %q: %w", payment.BookingID, err)
	}

	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return "", fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var paymentID string
	txnFn := func(sc mongo.SessionContext) error {
		id, err := r.settle(sc, bookingOID, payment)
		if err != nil {
			return err
		}
		paymentID = id
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == nil {
		return paymentID, nil
	}
	if !transactionsUnsupported(err) {
		return "", fmt.Errorf("payment transaction failed: %w", err)
	}

	// Standalone deployment: settle with sequential writes.
	paymentID, err = r.settle(ctx, bookingOID, payment)
	if err != nil {
		return "", fmt.Errorf("payment settle failed: %w", err)
	}
	return paymentID, nil
}

// settle performs the two writes under the given context, which may be a
// session context inside a transaction.
func (r *MongoPaymentRepo) settle(ctx context.Context, bookingOID primitive.ObjectID, payment *models.Payment) (string, error) {
	res, err := r.paymentColl.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("insert payment failed: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": payment.TransactionID,
	}}
	upd, err := r.bookingColl.UpdateOne(ctx, bson.M{"_id": bookingOID}, update)
	if err != nil {
		return "", fmt.Errorf("mark booking paid failed: %w", err)
	}
	if upd.MatchedCount == 0 {
		return "", fmt.Errorf("booking with id %s not found", payment.BookingID)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	payment.ID = oid
	return oid.Hex(), nil
}

// transactionsUnsupported reports whether the error came from a deployment
// that rejects multi-document transactions.
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IllegalOperation: transaction numbers only allowed on replica sets.
		return cmdErr.Code == 20
	}
	return false
}
