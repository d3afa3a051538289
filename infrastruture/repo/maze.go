package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze models.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (m *MazeRepo) Save(mz *maze.Maze) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": mz.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":   mz.OwnerID,
			"name":      mz.Name,
			"layout":    mz.Layout,
			"rows":      mz.Rows,
			"cols":      mz.Cols,
			"createdAt": mz.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns an error if the maze is not found or if an unexpected error occurs.
func (m *MazeRepo) ByID(id uuid.UUID) (*maze.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var mz maze.Maze
	if err := m.collection.FindOne(ctx, filter).Decode(&mz); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maze not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &mz, nil
}

// ByOwner retrieves every maze stored by a user.
func (m *MazeRepo) ByOwner(ownerID uuid.UUID) ([]*maze.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var mazes []*maze.Maze
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return mazes, nil
}
