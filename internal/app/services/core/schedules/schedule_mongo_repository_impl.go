package schedules

import (
	"context"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the two indexes the range queries rely on: datetime
// ascending and the compound (datetime, status).
func (repo *ScheduleMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "datetime", Value: 1}}},
		{Keys: bson.D{{Key: "datetime", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

// InsertIfAbsent inserts the slot and reports whether it was created. A
// duplicate id is not an error: whoever lost the insert race simply sees
// false, which is what makes week initialization idempotent.
func (repo *ScheduleMongoRepository) InsertIfAbsent(ctx context.Context, slot *models.Slot) (bool, error) {
	_, err := repo.Collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return true, nil
}

func (repo *ScheduleMongoRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	var slot models.Slot
	err := repo.Collection.FindOne(ctx, bson.M{"_id": slotID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

// ConditionalUpdate is the atomic match-and-mutate primitive. It maps onto a
// single findOneAndUpdate, so the match, the sort+limit selection and the
// mutation are indivisible; concurrent callers racing on the same filter get
// at most one winner per document.
func (repo *ScheduleMongoRepository) ConditionalUpdate(ctx context.Context, filter contracts.SlotFilter, mutation contracts.SlotMutation, sortByDatetimeAsc bool) (*models.Slot, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     mutation.Status,
			"booked_by":  mutation.BookedBy,
			"updated_at": mutation.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if sortByDatetimeAsc {
		opts = opts.SetSort(bson.D{{Key: "datetime", Value: 1}})
	}

	var slot models.Slot
	err := repo.Collection.FindOneAndUpdate(ctx, buildSlotFilter(filter), update, opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &slot, nil
}

func (repo *ScheduleMongoRepository) CountByDate(ctx context.Context, date string, limit int64) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"date": date}, options.Count().SetLimit(limit))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *ScheduleMongoRepository) FindByDatetimeRange(ctx context.Context, from, to time.Time) ([]models.Slot, error) {
	filter := bson.M{
		"datetime": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func buildSlotFilter(f contracts.SlotFilter) bson.M {
	filter := bson.M{}
	if f.ID != nil {
		filter["_id"] = *f.ID
	}
	if f.Date != nil {
		filter["date"] = *f.Date
	}
	if f.Status != nil {
		filter["status"] = *f.Status
	}
	if f.BookedBy != nil {
		filter["booked_by"] = *f.BookedBy
	}
	if f.DatetimeFrom != nil || f.DatetimeTo != nil {
		window := bson.M{}
		if f.DatetimeFrom != nil {
			window["$gte"] = *f.DatetimeFrom
		}
		if f.DatetimeTo != nil {
			window["$lte"] = *f.DatetimeTo
		}
		filter["datetime"] = window
	}
	return filter
}
