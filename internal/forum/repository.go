package forum

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ForumRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewForumRepository(db *mongo.Database, log *zap.Logger) *ForumRepository {
	return &ForumRepository{collection: db.Collection("discussion"), log: log}
}

// List returns all messages ordered by timestamp ascending.
func (r *ForumRepository) List(ctx context.Context) ([]*Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ForumRepository) Insert(ctx context.Context, message *Message) error {
	res, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = id
	}
	return nil
}

// Subscribe opens a change stream on the discussion collection and pushes
// every inserted message into the returned channel. The stream and the
// channel are torn down when ctx ends, so a disconnecting subscriber never
// leaks a cursor.
func (r *ForumRepository) Subscribe(ctx context.Context) (<-chan *Message, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "insert"}}}},
	}
	stream, err := r.collection.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	messages := make(chan *Message)
	go func() {
		defer close(messages)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument Message `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				r.log.Error("Failed to decode change stream event", zap.Error(err))
				continue
			}
			select {
			case messages <- &event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			r.log.Error("Discussion change stream ended", zap.Error(err))
		}
	}()
	return messages, nil
}
