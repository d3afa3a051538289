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

// SolutionRepo handles the persistence of solution models.
type SolutionRepo struct {
	collection *mongo.Collection
}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// Save inserts or updates a solution in the repository.
func (s *SolutionRepo) Save(sol *maze.Solution) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": sol.ID}
	update := bson.M{
		"$set": bson.M{
			"mazeId":        sol.MazeID,
			"requestedBy":   sol.RequestedBy,
			"strategy":      sol.Strategy,
			"found":         sol.Found,
			"actions":       sol.Actions,
			"path":          sol.Path,
			"explored":      sol.Explored,
			"exploredCount": sol.ExploredCount,
			"createdAt":     sol.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a solution by its ID.
// Returns an error if the solution is not found or if an unexpected error occurs.
func (s *SolutionRepo) ByID(id uuid.UUID) (*maze.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var sol maze.Solution
	if err := s.collection.FindOne(ctx, filter).Decode(&sol); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("solution not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &sol, nil
}

// ByMaze retrieves every stored solution of a maze.
func (s *SolutionRepo) ByMaze(mazeID uuid.UUID) ([]*maze.Solution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"mazeId": mazeID}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var solutions []*maze.Solution
	if err := cursor.All(ctx, &solutions); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return solutions, nil
}
